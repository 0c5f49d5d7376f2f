package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doc-vault-api/internal/application/ports"
	"doc-vault-api/internal/application/services"
	domainFile "doc-vault-api/internal/domain/file"
	"doc-vault-api/internal/infrastructure/jwt"
	filedto "doc-vault-api/internal/interface/api/rest/dto/file"
	"doc-vault-api/internal/interface/api/rest/middleware"
	"doc-vault-api/internal/interface/api/rest/validator"
	"doc-vault-api/pkg/bytefmt"
)

// 100MB
const maxSize = int64(100 << 20)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	r.POST(RouteUpload, authed, fc.UploadFileHandler)
	r.GET(RouteFiles, authed, fc.ListFilesHandler)
	r.PUT(RouteFileRename, authed, fc.RenameFileHandler)
	r.DELETE(RouteFile, authed, fc.DeleteFileHandler)

	return fc
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	access, err := validator.ValidateAccess(c.PostForm("access"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	expiresAt, err := validator.ValidateExpiresAt(c.PostForm("expires_at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := ports.UploadOptions{
		Access:    access,
		Folder:    c.PostForm("folder"),
		Tags:      validator.ParseTags(c.PostForm("tags")),
		ExpiresAt: expiresAt,
	}

	rec, storage, err := fc.fileService.UploadFile(c.Request.Context(), uuid, fh, opts)
	if err != nil {
		var quotaErr *services.QuotaExceededError
		if errors.As(err, &quotaErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":         quotaErr.Error(),
				"storage_used":  bytefmt.Format(quotaErr.UsedBytes),
				"storage_limit": bytefmt.Format(quotaErr.LimitBytes),
			})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to upload a file"},
		)
		fc.logger.Error("UploadFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, filedto.UploadResponse{
		File:         filedto.ToResponseFile(*rec),
		StorageUsed:  bytefmt.Format(storage.UsedBytes),
		StorageLimit: bytefmt.Format(storage.LimitBytes),
	})
}

func (fc *FileController) ListFilesHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	sortBy, err := validator.ValidateSortBy(c.Query("sort_by"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := domainFile.Query{
		Folder: c.Query("folder"),
		Search: c.Query("search"),
		SortBy: sortBy,
	}

	listing, err := fc.fileService.ListFiles(c.Request.Context(), uuid, q)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("ListFiles() error", zap.Error(err))
		return
	}

	resp := filedto.ListResponse{
		Files:        filedto.ToResponseFiles(listing.Files),
		TotalFiles:   len(listing.Files),
		StorageUsed:  bytefmt.Format(listing.Storage.UsedBytes),
		StorageLimit: bytefmt.Format(listing.Storage.LimitBytes),
		Folders:      listing.Folders,
	}
	if listing.Owner != nil {
		resp.User = filedto.UserSummary{
			Name:  listing.Owner.Name,
			Email: listing.Owner.Email,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (fc *FileController) RenameFileHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req filedto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.FileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id is required"})
		return
	}
	if err := validator.ValidateFileName(req.NewName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := fc.fileService.RenameFile(c.Request.Context(), uuid, req.FileID, req.NewName)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to rename a file"},
		)
		fc.logger.Error("RenameFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, filedto.ToResponseFile(*rec))
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	fileID := c.Param("file_id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id is required"})
		return
	}

	storage, err := fc.fileService.DeleteFile(c.Request.Context(), uuid, fileID)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete a file"},
		)
		fc.logger.Error("DeleteFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, filedto.DeleteResponse{
		FileID:      fileID,
		StorageUsed: bytefmt.Format(storage.UsedBytes),
	})
}
