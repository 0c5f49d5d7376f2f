package services

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"doc-vault-api/internal/application/ports"
	domain "doc-vault-api/internal/domain/file"
	"doc-vault-api/internal/domain/quota"
	"doc-vault-api/internal/domain/user"
	"doc-vault-api/internal/infrastructure/db/postgres"
	"doc-vault-api/internal/infrastructure/fileid"
	"doc-vault-api/internal/infrastructure/mq"
	filedto "doc-vault-api/internal/interface/api/rest/dto/file"
	"doc-vault-api/pkg/bytefmt"
)

const maxBaseNameLen = 100

var (
	windowsReserved = map[string]struct{}{
		"con": {}, "prn": {}, "aux": {}, "nul": {},
		"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
		"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
	}
	fileSafeRe    = regexp.MustCompile(`[^A-Za-z0-9\.\_\- ]+`)
	leadingDotsRe = regexp.MustCompile(`^\.+`)

	// coarse display categories by extension, not MIME-exact
	fileTypeByExt = map[string]string{
		".pdf":  "PDF",
		".doc":  "DOC",
		".docx": "DOC",
		".xls":  "XLS",
		".xlsx": "XLS",
		".ppt":  "PPT",
		".pptx": "PPT",
		".jpg":  "Image",
		".jpeg": "Image",
		".png":  "Image",
		".gif":  "Image",
		".svg":  "Image",
		".zip":  "ZIP",
		".rar":  "ZIP",
		".txt":  "TXT",
		".csv":  "CSV",
	}
)

type FileService struct {
	logger         *zap.Logger
	s3             ports.S3Client
	qr             ports.QREncoder
	fileRepository domain.Repository
	userRepository user.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	publicBaseURL  string
}

func NewFileService(
	logger *zap.Logger,
	s3 ports.S3Client,
	qr ports.QREncoder,
	fileRepository domain.Repository,
	userRepository user.Repository,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	publicBaseURL string,
) ports.FileService {
	return &FileService{
		logger:         logger,
		s3:             s3,
		qr:             qr,
		fileRepository: fileRepository,
		userRepository: userRepository,
		mq:             rbMQ,
		mCounter:       mCounter,
		publicBaseURL:  publicBaseURL,
	}
}

func (fs *FileService) ListFiles(ctx context.Context, userUUID user.UUID, q domain.Query) (*ports.Listing, error) {
	owner, err := fs.userRepository.FetchUserByID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("user not found by uuid %s", userUUID.String())
	}

	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	recs, err := fs.fileRepository.FetchFiles(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.Listing{
		Files: domain.Apply(recs, q),
		Storage: ports.StorageSummary{
			UsedBytes:  owner.StorageUsedBytes,
			LimitBytes: owner.StorageLimitBytes,
		},
		Folders: owner.Folders,
		Owner:   owner,
	}, nil
}

// UploadFile runs the admission flow: pre-check the ledger, stream the
// object to storage, then commit usage atomically and insert the record.
// The ledger only moves after the transfer has succeeded.
func (fs *FileService) UploadFile(
	ctx context.Context,
	userUUID user.UUID,
	in *multipart.FileHeader,
	opts ports.UploadOptions,
) (*domain.Record, *ports.StorageSummary, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, nil, err
	}

	used, limit, err := fs.userRepository.FetchStorageUsage(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !quota.CanAdmit(used, limit, in.Size) {
		return nil, nil, &QuotaExceededError{UsedBytes: used, LimitBytes: limit}
	}

	rec := fs.fillMetaData(in, opts, userUUID)

	f, err := in.Open()
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	url, err := fs.s3.Upload(ctx, f, rec.StorageKey, in.Header.Get("Content-Type"))
	if err != nil {
		return nil, nil, err
	}
	rec.URL = url

	// Commit usage with the limit as a ceiling. A concurrent upload may
	// have consumed the headroom since the pre-check; then the object is
	// rolled back and the caller gets the quota error.
	newUsed, admitted, err := fs.userRepository.AdmitStorage(ctx, id, in.Size)
	if err != nil {
		fs.bestEffortDelete(rec.StorageKey)
		return nil, nil, err
	}
	if !admitted {
		fs.bestEffortDelete(rec.StorageKey)
		used, limit, _ = fs.userRepository.FetchStorageUsage(ctx, id)
		return nil, nil, &QuotaExceededError{UsedBytes: used, LimitBytes: limit}
	}

	out, err := fs.createWithFreshID(ctx, id, rec)
	if err != nil {
		// roll the ledger and the object back so nothing leaks
		if _, rErr := fs.userRepository.ReclaimStorage(ctx, id, in.Size); rErr != nil {
			fs.logger.Error("ledger rollback failed", zap.Error(rErr), zap.Uint64("user_id", uint64(id)))
		}
		fs.bestEffortDelete(rec.StorageKey)
		return nil, nil, err
	}

	if out.Folder != "" && out.Folder != "root" {
		if err = fs.userRepository.AddFolder(ctx, id, out.Folder); err != nil {
			fs.logger.Error("folder registration failed", zap.Error(err), zap.String("folder", out.Folder))
		}
	}

	fs.publishEvent(http.MethodPost, userUUID, out)
	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return out, &ports.StorageSummary{UsedBytes: newUsed, LimitBytes: limit}, nil
}

func (fs *FileService) RenameFile(ctx context.Context, userUUID user.UUID, fileID, newName string) (*domain.Record, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	rec, err := fs.fileRepository.RenameFile(ctx, id, fileID, newName)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrFileNotFound
	}

	fs.publishEvent(http.MethodPut, userUUID, rec)
	fs.mCounter.WithLabelValues("files_renamed_total").Inc()

	return rec, nil
}

// DeleteFile removes the record and reclaims its bytes. The provider
// delete is best-effort: a failure is logged and never blocks the local
// removal, trading orphaned blobs for metadata consistency.
func (fs *FileService) DeleteFile(ctx context.Context, userUUID user.UUID, fileID string) (*ports.StorageSummary, error) {
	id, err := fs.userRepository.FetchInternalID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	_, limit, err := fs.userRepository.FetchStorageUsage(ctx, id)
	if err != nil {
		return nil, err
	}

	rec, err := fs.fileRepository.RemoveFile(ctx, id, fileID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrFileNotFound
	}

	fs.bestEffortDelete(rec.StorageKey)

	newUsed, err := fs.userRepository.ReclaimStorage(ctx, id, quota.ReclaimBytes(rec))
	if err != nil {
		return nil, err
	}

	fs.publishEvent(http.MethodDelete, userUUID, rec)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return &ports.StorageSummary{UsedBytes: newUsed, LimitBytes: limit}, nil
}

// VerifyFile resolves a public id with no owner context and runs the
// verification gate against the current time.
func (fs *FileService) VerifyFile(ctx context.Context, fileID string) (*domain.Record, string, domain.Decision, error) {
	rec, ownerName, err := fs.fileRepository.FetchByPublicID(ctx, fileID)
	if err != nil {
		return nil, "", domain.DeniedPrivate, err
	}
	if rec == nil {
		return nil, "", domain.DeniedPrivate, ErrFileNotFound
	}

	return rec, ownerName, domain.Evaluate(rec, time.Now().UTC()), nil
}

func (fs *FileService) fillMetaData(in *multipart.FileHeader, opts ports.UploadOptions, userUUID user.UUID) *domain.Record {
	name := filepath.Base(in.Filename)
	if name == "" || name == "." || name == "/" {
		name = "untitled"
	}

	access := opts.Access
	if access != domain.AccessPublic {
		access = domain.AccessPrivate
	}
	folder := strings.TrimSpace(opts.Folder)
	if folder == "" {
		folder = "root"
	}

	rec := &domain.Record{
		Name:       name,
		FileType:   fileTypeOf(name),
		SizeBytes:  in.Size,
		SizeLabel:  bytefmt.Format(in.Size),
		Access:     access,
		Status:     domain.StatusVerified,
		Folder:     folder,
		Tags:       opts.Tags,
		ExpiresAt:  opts.ExpiresAt,
		UploadedAt: time.Now().UTC(),
	}
	rec.StorageKey = fs.genSafeStorageKey(sanitizeFileName(in.Filename), in.Header.Get("Content-Type"), userUUID)

	return rec
}

// createWithFreshID stamps the record with a new public id and verify
// link. A unique-index collision is retried once with another id; at this
// id length that is already vanishingly rare.
func (fs *FileService) createWithFreshID(ctx context.Context, ownerID user.ID, rec *domain.Record) (*domain.Record, error) {
	for attempt := 0; attempt < 2; attempt++ {
		id, err := fileid.New()
		if err != nil {
			return nil, err
		}
		rec.ID = id
		rec.VerifyURL = fileid.VerifyURL(fs.publicBaseURL, id)
		rec.QRCode = fs.encodeQR(rec.VerifyURL)

		out, err := fs.fileRepository.CreateFile(ctx, ownerID, rec)
		if err == nil {
			return out, nil
		}
		if !postgres.IsPgUniqueViolation(err) || attempt == 1 {
			return nil, err
		}
	}

	return nil, fmt.Errorf("file id collision retry exhausted")
}

// encodeQR tolerates encoder failure: the record is still stored, just
// without the embedded image, same as the upload link itself.
func (fs *FileService) encodeQR(url string) string {
	img, err := fs.qr.Encode(url)
	if err != nil {
		fs.logger.Error("qr encode failed", zap.Error(err), zap.String("url", url))
		fs.mCounter.WithLabelValues("qr_encode_failed_total").Inc()
		return ""
	}
	return img
}

func (fs *FileService) bestEffortDelete(key string) {
	// fire-and-forget: not on the critical path of the caller's request
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := fs.s3.Delete(ctx, key); err != nil {
		fs.logger.Error("storage delete failed, blob orphaned", zap.Error(err), zap.String("key", key))
		fs.mCounter.WithLabelValues("s3_delete_failed_total").Inc()
	}
}

func (fs *FileService) publishEvent(method string, userUUID user.UUID, rec *domain.Record) {
	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  userUUID.String(),
		Payload: filedto.ToResponseFile(*rec),
	}
}

func fileTypeOf(name string) string {
	if t, ok := fileTypeByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	return "File"
}

// genSafeStorageKey: "documents/YYYY/MM/DD/<ts-nanosec>/<useruuid>/<filename>.ext"
func (fs *FileService) genSafeStorageKey(fileName, mimeType string, userUUID user.UUID) string {
	clean := strings.TrimSpace(fileName)
	clean = strings.Map(func(r rune) rune {
		if r == '\x00' || r < 0x20 {
			return -1
		}
		return r
	}, clean)
	clean = leadingDotsRe.ReplaceAllString(clean, "")

	ext := strings.ToLower(filepath.Ext(clean))
	base := strings.TrimSuffix(clean, ext)

	if ext == "" {
		if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
			ext = exts[0]
		}
	}

	base = fileSafeRe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "- .")

	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}

	if base == "" {
		base = "file"
	}

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if ext == "" {
		ext = ".bin"
	}

	safeFileName := base + ext

	now := time.Now().UTC()
	return fmt.Sprintf(
		"documents/%04d/%02d/%02d/%s/%s/%s",
		now.Year(), int(now.Month()), now.Day(),
		now.Format("20060102T150405.000000000Z"),
		strings.ToLower(strings.ReplaceAll(userUUID.String(), "-", "")),
		safeFileName,
	)
}

// sanitizeFileName make file name ASCII standard
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	//  [a-z0-9], '-' и '_', dot/space → '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if _, bad := windowsReserved[base]; bad {
		base = "_" + base
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
