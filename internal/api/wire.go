package api

import (
	"github.com/uptrace/bun"

	"github.com/Jasch-M/asyncmuseum/internal/logger"
	"github.com/Jasch-M/asyncmuseum/internal/metrics"
	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/museum"
	"github.com/Jasch-M/asyncmuseum/internal/store"
)

type Dependencies struct {
	DB        *bun.DB
	Tokens    museum.TokenIssuer
	Publisher museum.ContactPublisher
	Logger    *logger.Logger
	Metrics   *metrics.Metrics
}

// NewFromDB builds the stores, services and handler over one database.
func NewFromDB(deps Dependencies) *Handler {
	contact := museum.NewContactService(store.NewContactStore(deps.DB), deps.Publisher, deps.Logger)
	if deps.Metrics != nil {
		contact.OnPublish = deps.Metrics.ObservePublish
	}

	return NewHandler(
		museum.NewExhibitService(store.NewRepository[models.Exhibit](deps.DB, "id ASC")),
		museum.NewEventService(store.NewRepository[models.Event](deps.DB, "id ASC")),
		museum.NewVisitorInfoService(store.NewVisitorInfoStore(deps.DB), deps.Logger),
		museum.NewAuthService(store.NewUserStore(deps.DB), deps.Tokens, deps.Logger),
		contact,
		deps.DB,
		deps.Logger,
		deps.Metrics,
	)
}
