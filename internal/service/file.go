package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/storage"
	"github.com/google/uuid"
)

type FileService struct {
	fileRepo repository.FileRepository
	storage  storage.Storage
}

func NewFileService(fileRepo repository.FileRepository, storage storage.Storage) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		storage:  storage,
	}
}

// Upload stores a file and creates a database record.
// File validation (type, size, content) is done by the caller.
func (s *FileService) Upload(userID, ownerType, ownerID, fileType string, file multipart.File, header *multipart.FileHeader, isPublic bool) (*model.File, error) {
	ext := filepath.Ext(header.Filename)
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	prefix := "private"
	if isPublic {
		prefix = "public"
	}
	folderName := fileType + "s" // avatar -> avatars, certificate -> certificates
	storagePath := filepath.Join(prefix, folderName, filename)

	err := s.storage.Save(storagePath, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileModel := &model.File{
		ID:           uuid.New().String(),
		UserID:       userID,
		OwnerType:    ownerType,
		OwnerID:      ownerID,
		Type:         fileType,
		Filename:     filename,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		StoragePath:  storagePath,
		Public:       isPublic,
		CreatedAt:    time.Now(),
	}

	err = s.fileRepo.Create(fileModel)
	if err != nil {
		// DB insert failed; clean up the uploaded object
		delErr := s.storage.Delete(storagePath)
		if delErr != nil {
			slog.Error("failed to delete file from storage during cleanup", "error", delErr, "path", storagePath)
		}
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return fileModel, nil
}

// Avatar retrieves the avatar for an owner
func (s *FileService) Avatar(ownerType, ownerID string) (*model.File, error) {
	return s.fileRepo.FileByType(ownerType, ownerID, model.FileTypeAvatar)
}

// ByID retrieves a file record
func (s *FileService) ByID(fileID string) (*model.File, error) {
	return s.fileRepo.ByID(fileID)
}

// URL returns the appropriate URL for a file (public or presigned)
func (s *FileService) URL(file *model.File) string {
	if file == nil {
		return ""
	}

	if file.Public {
		// Public files: presigned URL with long expiry
		return s.storage.PublicURL(file.StoragePath)
	}

	// Private files: presigned URL with short expiry
	url, err := s.storage.PresignedURL(file.StoragePath, s.storage.PresignExpiryPrivate())
	if err != nil {
		return s.storage.PublicURL(file.StoragePath)
	}
	return url
}

// Delete removes a file from storage and database
func (s *FileService) Delete(fileID string) error {
	file, err := s.fileRepo.ByID(fileID)
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}

	// Storage delete is best effort; the object may already be gone
	delErr := s.storage.Delete(file.StoragePath)
	if delErr != nil {
		slog.Error("failed to delete file from storage", "error", delErr, "path", file.StoragePath)
	}

	err = s.fileRepo.Delete(fileID)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}

// DeleteUserAvatar deletes the user's avatar
func (s *FileService) DeleteUserAvatar(userID string) error {
	file, err := s.Avatar("user", userID)
	if err != nil {
		if err == repository.ErrFileNotFound {
			return nil // No avatar to delete
		}
		return err
	}

	return s.Delete(file.ID)
}

// AllUserFiles retrieves all files owned by a user
func (s *FileService) AllUserFiles(userID string) ([]*model.File, error) {
	return s.fileRepo.AllUserFiles(userID)
}

func (s *FileService) DeleteAllUserFilesFromStorage(userID string) error {
	files, err := s.fileRepo.AllUserFiles(userID)
	if err != nil {
		return fmt.Errorf("failed to get user files: %w", err)
	}

	for _, file := range files {
		err = s.storage.Delete(file.StoragePath)
		if err != nil {
			slog.Warn("failed to delete file from storage", "storage_path", file.StoragePath, "error", err)
		}
	}

	return nil
}
