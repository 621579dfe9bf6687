// internal/app/features/notes/handler.go
package notes

import (
	uierrors "github.com/dalemusser/matterhub/internal/app/features/errors"
	"github.com/dalemusser/matterhub/internal/app/system/livepush"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for a matter's notes: add, edit,
// delete confirmation, and the live note list.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Live   livepush.Config
}

// NewHandler creates a new notes Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, live livepush.Config, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
		Live:   live,
	}
}
