package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/httpresp"
	"github.com/jdsalazarc/barberia-desk/internal/infra/photostore"
	"github.com/jdsalazarc/barberia-desk/internal/middleware"
)

// 4 MiB is plenty for a profile photo.
const maxPhotoBytes = 4 << 20

type MeHandler struct {
	repo   domain.Repository
	photos *photostore.Store
	log    *logrus.Logger
}

func NewMeHandler(
	repo domain.Repository,
	photos *photostore.Store,
	log *logrus.Logger,
) *MeHandler {
	return &MeHandler{
		repo:   repo,
		photos: photos,
		log:    log,
	}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	emp, err := h.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("me lookup failed")
		httperr.Internal(c, "Ocurrió un error en el servidor.")
		return
	}

	httpresp.OK(c, emp)
}

// UploadPhoto replaces the caller's profile photo. The previous file is
// removed only after the new path is persisted.
func (h *MeHandler) UploadPhoto(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	emp, err := h.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("me lookup failed")
		httperr.Internal(c, "Ocurrió un error en el servidor.")
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "Debe adjuntar una foto.")
		return
	}
	if fh.Size > maxPhotoBytes {
		httperr.BadRequest(c, "La foto es demasiado grande.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.log.WithError(err).Error("photo open failed")
		httperr.Internal(c, "No se pudo procesar la foto.")
		return
	}
	defer f.Close()

	name, err := h.photos.Save(f)
	if err != nil {
		httperr.BadRequest(c, "El archivo no es una imagen válida.")
		return
	}

	if err := h.repo.SetPhotoPath(c.Request.Context(), userID, name); err != nil {
		h.log.WithError(err).Error("photo path update failed")
		if rmErr := h.photos.Remove(name); rmErr != nil {
			h.log.WithError(rmErr).Warn("orphan photo cleanup failed")
		}
		httperr.Internal(c, "Ocurrió un error al guardar la foto.")
		return
	}

	if err := h.photos.Remove(emp.PhotoPath); err != nil {
		h.log.WithError(err).Warn("old photo cleanup failed")
	}

	httpresp.OK(c, gin.H{"photo_path": name})
}
