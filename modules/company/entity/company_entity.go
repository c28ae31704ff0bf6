package entity

import (
	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
)

// Company is an organization that owns events and company posts. The
// responsible user is the only actor allowed to manage them.
type Company struct {
	Name          string               `db:"name" json:"name"`
	Description   *string              `db:"description" json:"description,omitempty"`
	Photo         *string              `db:"photo" json:"photo,omitempty"`
	ResponsibleID uuid.UUID            `db:"responsible_id" json:"responsible_id"`
	Lifecycle     coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}

type PaginatedCompanyEntity = coreEntity.Pagination[Company]
