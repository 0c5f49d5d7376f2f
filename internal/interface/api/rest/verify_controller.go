package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doc-vault-api/internal/application/ports"
	"doc-vault-api/internal/application/services"
	domainFile "doc-vault-api/internal/domain/file"
	filedto "doc-vault-api/internal/interface/api/rest/dto/file"
)

// VerifyController serves the public verification endpoint. It is the
// only file route without auth: anyone holding a share link may call it.
type VerifyController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewVerifyController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
) *VerifyController {
	vc := &VerifyController{
		fileService: fileService,
		logger:      logger,
	}

	r.GET(RouteVerify, vc.VerifyFileHandler)

	return vc
}

func (vc *VerifyController) VerifyFileHandler(c *gin.Context) {
	fileID := c.Param("file_id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id is required"})
		return
	}

	rec, ownerName, decision, err := vc.fileService.VerifyFile(c.Request.Context(), fileID)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to verify a document"},
		)
		vc.logger.Error("VerifyFile() error", zap.Error(err))
		return
	}

	switch decision {
	case domainFile.DeniedPrivate:
		c.JSON(http.StatusForbidden, gin.H{"error": "this document is private"})
	case domainFile.DeniedExpired:
		c.JSON(http.StatusGone, gin.H{"error": "this document has expired"})
	default:
		c.JSON(http.StatusOK, filedto.VerifyResponse{
			File:     filedto.ToPublicFile(*rec),
			Owner:    filedto.Owner{Name: ownerName},
			Verified: true,
		})
	}
}
