//go:build unit || e2e

package builder

import (
	reqdto "pet-resort-api/internal/handler/dto/request"
)

type ResortBuilder struct {
	Name    string
	Street  string
	City    string
	State   string
	ZipCode string
}

func NewResortBuilder() *ResortBuilder {
	return &ResortBuilder{
		Name:    "Happy Paws Resort",
		Street:  "1 Kennel Way",
		City:    "Portland",
		State:   "OR",
		ZipCode: "97201",
	}
}

func (r *ResortBuilder) WithName(name string) *ResortBuilder {
	r.Name = name
	return r
}

func (r *ResortBuilder) BuildDTO() reqdto.ResortRequest {
	return reqdto.ResortRequest{
		Name:    r.Name,
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
	}
}

func BuildHoursDTO(opens, closes string, capacity int) reqdto.SetHoursRequest {
	return reqdto.SetHoursRequest{Opens: opens, Closes: closes, Capacity: &capacity}
}
