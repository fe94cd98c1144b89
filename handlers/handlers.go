package handlers

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/aniketgore/Influencer_Payment_Backend.git/services"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store"
	"github.com/sirupsen/logrus"
)

// Context timeout for database operations
const dbTimeout = 5 * time.Second

// Longer timeout for the flows that also upload to object storage.
const submitTimeout = 30 * time.Second

// Handler exposes the HTTP surface over the workflow and repositories.
type Handler struct {
	Workflow      *services.Workflow
	Directory     store.Directory
	Submissions   store.Submissions
	Confirmations store.Confirmations
	Logger        *logrus.Logger
}

func New(workflow *services.Workflow, stores store.Stores, logger *logrus.Logger) *Handler {
	return &Handler{
		Workflow:      workflow,
		Directory:     stores.Directory,
		Submissions:   stores.Submissions,
		Confirmations: stores.Confirmations,
		Logger:        logger,
	}
}

// readUpload pulls an uploaded file into memory for the workflow.
func readUpload(fileHeader *multipart.FileHeader) (*services.UploadedFile, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &services.UploadedFile{Name: fileHeader.Filename, Data: data}, nil
}
