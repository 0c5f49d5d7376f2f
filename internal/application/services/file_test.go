package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"doc-vault-api/internal/application/ports"
	domainFile "doc-vault-api/internal/domain/file"
	domainUser "doc-vault-api/internal/domain/user"
	"doc-vault-api/internal/infrastructure/mq"
)

type fakeUserRepo struct {
	used, limit int64
	admitDenied bool

	admitted  int64
	reclaimed int64
	folders   []string
}

func (f *fakeUserRepo) FetchUserByID(ctx context.Context, uuid domainUser.UUID) (*domainUser.User, error) {
	return &domainUser.User{
		UUID:              uuid,
		Name:              "Alice",
		Email:             "alice@example.com",
		StorageUsedBytes:  f.used,
		StorageLimitBytes: f.limit,
		Folders:           []string{"root"},
	}, nil
}
func (f *fakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	return nil, errors.New("not used")
}
func (f *fakeUserRepo) CreateUser(ctx context.Context, req domainUser.User) (*domainUser.User, error) {
	return nil, errors.New("not used")
}
func (f *fakeUserRepo) FetchInternalID(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
	return 7, nil
}
func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id domainUser.ID) error { return nil }
func (f *fakeUserRepo) FetchStorageUsage(ctx context.Context, id domainUser.ID) (int64, int64, error) {
	return f.used, f.limit, nil
}
func (f *fakeUserRepo) AdmitStorage(ctx context.Context, id domainUser.ID, n int64) (int64, bool, error) {
	if f.admitDenied || f.used+n > f.limit {
		return 0, false, nil
	}
	f.used += n
	f.admitted += n
	return f.used, true, nil
}
func (f *fakeUserRepo) ReclaimStorage(ctx context.Context, id domainUser.ID, n int64) (int64, error) {
	f.used -= n
	if f.used < 0 {
		f.used = 0
	}
	f.reclaimed += n
	return f.used, nil
}
func (f *fakeUserRepo) AddFolder(ctx context.Context, id domainUser.ID, folder string) error {
	f.folders = append(f.folders, folder)
	return nil
}

type fakeFileRepo struct {
	createErr error
	renamed   *domainFile.Record
	removed   *domainFile.Record

	created *domainFile.Record
}

func (f *fakeFileRepo) FetchFiles(ctx context.Context, ownerID domainUser.ID) (domainFile.Records, error) {
	return nil, nil
}
func (f *fakeFileRepo) CreateFile(ctx context.Context, ownerID domainUser.ID, req *domainFile.Record) (*domainFile.Record, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *req
	f.created = &cp
	return &cp, nil
}
func (f *fakeFileRepo) RenameFile(ctx context.Context, ownerID domainUser.ID, id, newName string) (*domainFile.Record, error) {
	return f.renamed, nil
}
func (f *fakeFileRepo) RemoveFile(ctx context.Context, ownerID domainUser.ID, id string) (*domainFile.Record, error) {
	return f.removed, nil
}
func (f *fakeFileRepo) FetchByPublicID(ctx context.Context, id string) (*domainFile.Record, string, error) {
	return nil, "", nil
}

type fakeS3 struct {
	uploadErr error
	deleted   []string
}

func (f *fakeS3) Upload(ctx context.Context, r io.Reader, key, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://cdn.example.com/" + key, nil
}
func (f *fakeS3) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}
func (f *fakeS3) GetPublicURL(key string) string { return "https://cdn.example.com/" + key }
func (f *fakeS3) GetBucket() string              { return "uploads" }

type fakeQR struct{}

func (fakeQR) Encode(url string) (string, error) { return "data:image/png;base64,qr", nil }

type fakeMQ struct {
	events chan mq.Event
}

func (f *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeMQ) Init() error                                   { return nil }
func (f *fakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *fakeMQ) GetInputChan() chan mq.Event                   { return f.events }
func (f *fakeMQ) GetConn() *amqp091.Connection                  { return nil }

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&b, w.Boundary()).ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	fhs := form.File["file"]
	require.Len(t, fhs, 1)
	return fhs[0]
}

func newFileService(ur *fakeUserRepo, fr *fakeFileRepo, s3 *fakeS3) (ports.FileService, *fakeMQ) {
	rbMQ := &fakeMQ{events: make(chan mq.Event, 8)}
	svc := NewFileService(
		zap.NewNop(),
		s3,
		fakeQR{},
		fr,
		ur,
		rbMQ,
		prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"}),
		"http://localhost:8080",
	)
	return svc, rbMQ
}

func TestFileService_UploadFile(t *testing.T) {
	content := bytes.Repeat([]byte("a"), 1<<20)

	t.Run("admits and stores the record", func(t *testing.T) {
		ur := &fakeUserRepo{used: 0, limit: 5 << 30}
		fr := &fakeFileRepo{}
		s3 := &fakeS3{}
		svc, rbMQ := newFileService(ur, fr, s3)

		fh := makeFileHeader(t, "Report.pdf", content)
		rec, storage, err := svc.UploadFile(context.Background(), uuid.New(), fh, ports.UploadOptions{
			Access: domainFile.AccessPublic,
			Folder: "invoices",
			Tags:   []string{"q1"},
		})
		require.NoError(t, err)
		require.NotNil(t, rec)

		assert.Len(t, rec.ID, 12)
		assert.Equal(t, "Report.pdf", rec.Name)
		assert.Equal(t, "PDF", rec.FileType)
		assert.Equal(t, "1.00 MB", rec.SizeLabel)
		assert.Equal(t, domainFile.AccessPublic, rec.Access)
		assert.Equal(t, domainFile.StatusVerified, rec.Status)
		assert.Equal(t, "http://localhost:8080/verify/"+rec.ID, rec.VerifyURL)
		assert.NotEmpty(t, rec.QRCode)

		assert.Equal(t, int64(1<<20), storage.UsedBytes)
		assert.Equal(t, int64(1<<20), ur.admitted)
		assert.Contains(t, ur.folders, "invoices")
		assert.Empty(t, s3.deleted)

		ev := <-rbMQ.events
		assert.Equal(t, "POST", ev.Method)
	})

	t.Run("rejects when the pre-check fails", func(t *testing.T) {
		ur := &fakeUserRepo{used: 4900000000, limit: 5368709120}
		fr := &fakeFileRepo{}
		s3 := &fakeS3{}
		svc, _ := newFileService(ur, fr, s3)

		fh := makeFileHeader(t, "big.zip", bytes.Repeat([]byte("b"), 600*1024))
		// pre-check math runs on the reported size; shrink the limit so even
		// this small payload cannot fit
		ur.limit = ur.used + 1

		_, _, err := svc.UploadFile(context.Background(), uuid.New(), fh, ports.UploadOptions{})
		var quotaErr *QuotaExceededError
		require.ErrorAs(t, err, &quotaErr)
		assert.Equal(t, int64(4900000000), quotaErr.UsedBytes)
		assert.Equal(t, int64(0), ur.admitted)
		assert.Empty(t, s3.deleted)
		assert.Nil(t, fr.created)
	})

	t.Run("rolls back the object when the commit loses the race", func(t *testing.T) {
		ur := &fakeUserRepo{used: 0, limit: 5 << 30, admitDenied: true}
		fr := &fakeFileRepo{}
		s3 := &fakeS3{}
		svc, _ := newFileService(ur, fr, s3)

		fh := makeFileHeader(t, "doc.pdf", content)
		_, _, err := svc.UploadFile(context.Background(), uuid.New(), fh, ports.UploadOptions{})

		var quotaErr *QuotaExceededError
		require.ErrorAs(t, err, &quotaErr)
		assert.Len(t, s3.deleted, 1)
		assert.Nil(t, fr.created)
	})

	t.Run("rolls the ledger back when the insert fails", func(t *testing.T) {
		ur := &fakeUserRepo{used: 0, limit: 5 << 30}
		fr := &fakeFileRepo{createErr: errors.New("insert failed")}
		s3 := &fakeS3{}
		svc, _ := newFileService(ur, fr, s3)

		fh := makeFileHeader(t, "doc.pdf", content)
		_, _, err := svc.UploadFile(context.Background(), uuid.New(), fh, ports.UploadOptions{})

		require.Error(t, err)
		assert.Equal(t, int64(0), ur.used)
		assert.Equal(t, int64(1<<20), ur.reclaimed)
		assert.Len(t, s3.deleted, 1)
	})
}

func TestFileService_RenameFile(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		svc, _ := newFileService(&fakeUserRepo{limit: 5 << 30}, &fakeFileRepo{}, &fakeS3{})

		_, err := svc.RenameFile(context.Background(), uuid.New(), "missing000000", "new.pdf")
		require.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("renamed", func(t *testing.T) {
		fr := &fakeFileRepo{renamed: &domainFile.Record{ID: "abc123def456", Name: "new.pdf"}}
		svc, rbMQ := newFileService(&fakeUserRepo{limit: 5 << 30}, fr, &fakeS3{})

		rec, err := svc.RenameFile(context.Background(), uuid.New(), "abc123def456", "new.pdf")
		require.NoError(t, err)
		assert.Equal(t, "new.pdf", rec.Name)

		ev := <-rbMQ.events
		assert.Equal(t, "PUT", ev.Method)
	})
}

func TestFileService_DeleteFile(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		svc, _ := newFileService(&fakeUserRepo{limit: 5 << 30}, &fakeFileRepo{}, &fakeS3{})

		_, err := svc.DeleteFile(context.Background(), uuid.New(), "missing000000")
		require.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("reclaims the recorded bytes", func(t *testing.T) {
		ur := &fakeUserRepo{used: 1 << 20, limit: 5 << 30}
		fr := &fakeFileRepo{removed: &domainFile.Record{
			ID:         "abc123def456",
			StorageKey: "documents/2026/03/01/x/u/report.pdf",
			SizeBytes:  1 << 20,
			SizeLabel:  "1.00 MB",
		}}
		s3 := &fakeS3{}
		svc, rbMQ := newFileService(ur, fr, s3)

		storage, err := svc.DeleteFile(context.Background(), uuid.New(), "abc123def456")
		require.NoError(t, err)
		assert.Equal(t, int64(0), storage.UsedBytes)
		assert.Equal(t, int64(1<<20), ur.reclaimed)
		assert.Equal(t, []string{"documents/2026/03/01/x/u/report.pdf"}, s3.deleted)

		ev := <-rbMQ.events
		assert.Equal(t, "DELETE", ev.Method)
	})

	t.Run("falls back to the label when byte size is absent", func(t *testing.T) {
		ur := &fakeUserRepo{used: 2 << 20, limit: 5 << 30}
		fr := &fakeFileRepo{removed: &domainFile.Record{
			ID:        "abc123def456",
			SizeLabel: "1.00 MB",
		}}
		svc, _ := newFileService(ur, fr, &fakeS3{})

		_, err := svc.DeleteFile(context.Background(), uuid.New(), "abc123def456")
		require.NoError(t, err)
		assert.Equal(t, int64(1<<20), ur.reclaimed)
	})
}
