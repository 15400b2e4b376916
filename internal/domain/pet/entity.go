package pet

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errors.New("pet name is required")
	ErrInvalidMeasurement = errors.New("weight and height must not be negative")
	ErrFutureBirthday     = errors.New("birthday must not be in the future")
)

type Pet struct {
	id             uuid.UUID
	name           string
	breed          string
	birthday       *time.Time
	weight         *float64
	height         *float64
	primaryColor   string
	secondaryColor string
}

type Attributes struct {
	Name           string
	Breed          string
	Birthday       *time.Time
	Weight         *float64
	Height         *float64
	PrimaryColor   string
	SecondaryColor string
}

func NewPet(attrs Attributes, now time.Time) (*Pet, error) {
	name := strings.TrimSpace(attrs.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if (attrs.Weight != nil && *attrs.Weight < 0) || (attrs.Height != nil && *attrs.Height < 0) {
		return nil, ErrInvalidMeasurement
	}
	if attrs.Birthday != nil && attrs.Birthday.After(now) {
		return nil, ErrFutureBirthday
	}
	return &Pet{
		id:             uuid.New(),
		name:           name,
		breed:          strings.TrimSpace(attrs.Breed),
		birthday:       attrs.Birthday,
		weight:         attrs.Weight,
		height:         attrs.Height,
		primaryColor:   strings.TrimSpace(attrs.PrimaryColor),
		secondaryColor: strings.TrimSpace(attrs.SecondaryColor),
	}, nil
}

func (p *Pet) ID() uuid.UUID          { return p.id }
func (p *Pet) Name() string           { return p.name }
func (p *Pet) Breed() string          { return p.breed }
func (p *Pet) Birthday() *time.Time   { return p.birthday }
func (p *Pet) Weight() *float64       { return p.weight }
func (p *Pet) Height() *float64       { return p.height }
func (p *Pet) PrimaryColor() string   { return p.primaryColor }
func (p *Pet) SecondaryColor() string { return p.secondaryColor }
