package service

import (
	"context"

	"wiser_schedule"
	"wiser_schedule/internal/repository"
)

// EntityService lists assignment targets straight from the store.
type EntityService struct {
	entities repository.EntityRepo
}

func NewEntityService(entities repository.EntityRepo) *EntityService {
	return &EntityService{entities: entities}
}

var _ Entities = (*EntityService)(nil)

func (s *EntityService) Rooms(ctx context.Context, hub string) ([]wiser_schedule.Entity, error) {
	return s.entities.Rooms(ctx, hub)
}

func (s *EntityService) Devices(ctx context.Context, hub, subType string) ([]wiser_schedule.Entity, error) {
	return s.entities.Devices(ctx, hub, subType)
}
