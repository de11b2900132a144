// Package actorrepo provides data transfer objects and mapping functions for actor persistence.
// This package implements the repository pattern for the actor domain aggregate, handling
// the conversion between domain entities and database representations.
package actorrepo

import (
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO represents the database structure for persisting actor aggregates.
// Maps actor domain entities to relational database tables with their store grants.
type ActorDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GlobalLevel int             `gorm:"type:int;not null"`
	IsMaster    bool            `gorm:"not null"`
	Grants      []StoreGrantDTO `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for actor entities.
// Overrides GORM's default naming convention to use "actors".
func (ActorDTO) TableName() string {
	return "actors"
}

// StoreGrantDTO represents the database structure for persisting store grants.
// Links to its actor via foreign key; at most one grant per actor and store.
type StoreGrantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_actor_store"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_actor_store"`
	Level     int       `gorm:"type:int;not null"`
	GrantedBy uuid.UUID `gorm:"type:uuid"`
	GrantedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for store grant entities.
// Overrides GORM's default naming convention to use "store_grants".
func (StoreGrantDTO) TableName() string {
	return "store_grants"
}

// fromDomain converts an actor domain aggregate to its database representation.
// Grant rows get fresh identifiers; Update replaces an actor's grants wholesale.
func fromDomain(actor *access.Actor) ActorDTO {
	actorID := actor.ID().Bytes()
	grants := make([]StoreGrantDTO, 0, len(actor.Grants()))

	for _, grant := range actor.Grants() {
		grants = append(grants, StoreGrantDTO{
			ID:        uuid.New(),
			ActorID:   actorID,
			StoreID:   grant.StoreID().Bytes(),
			Level:     int(grant.Level()),
			GrantedBy: grant.GrantedBy().Bytes(),
			GrantedAt: grant.GrantedAt(),
		})
	}

	return ActorDTO{
		ID:          actorID,
		GlobalLevel: int(actor.GlobalLevel()),
		IsMaster:    actor.IsMaster(),
		Grants:      grants,
	}
}

// toDomain converts a database DTO to an actor domain aggregate.
// Reconstructs the complete aggregate including all grants using RestoreActor.
func toDomain(dto ActorDTO) (*access.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	grants := make([]access.StoreGrant, 0, len(dto.Grants))
	for _, grantDto := range dto.Grants {
		grant, grantErr := grantToDomain(grantDto)
		if grantErr != nil {
			return nil, grantErr
		}
		grants = append(grants, grant)
	}

	return access.RestoreActor(id, access.Level(dto.GlobalLevel), dto.IsMaster, grants)
}

// grantToDomain converts a store grant DTO to its domain value object.
func grantToDomain(dto StoreGrantDTO) (access.StoreGrant, error) {
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return access.StoreGrant{}, err
	}

	grantedBy, err := kernel.UUIDFromBytes(dto.GrantedBy[:])
	if err != nil {
		return access.StoreGrant{}, err
	}

	return access.NewStoreGrant(storeID, access.Level(dto.Level), grantedBy, dto.GrantedAt)
}
