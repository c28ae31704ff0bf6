package moderation

import (
	"social-events-api/core/database"
	"social-events-api/core/worker"
	"social-events-api/modules/moderation/repository"
	"social-events-api/modules/moderation/service"
)

// Init wires the moderation module. It exposes no routes of its own; the
// post and comment modules consume the returned service, and readers see
// moderation only through the censored flag on content responses.
func Init(db database.Database, enqueuer worker.Enqueuer) service.ModerationServiceInterface {
	repo := repository.NewModerationRepository(db)
	return service.NewModerationService(repo, enqueuer)
}
