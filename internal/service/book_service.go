package service

import (
	"context"

	"github.com/books-app/backend/internal/cache"
	"github.com/books-app/backend/internal/models"
	"github.com/books-app/backend/internal/repository"
	"github.com/books-app/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookInput carries the mutable fields of a catalog entry.
type BookInput struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	PublicationDate string   `json:"publicationDate"`
	Genres          []string `json:"genres"`
}

type BookService struct {
	bookRepo *repository.BookRepository
	userRepo *repository.UserRepository
	cache    cache.Cache
}

func NewBookService(bookRepo *repository.BookRepository, userRepo *repository.UserRepository, c cache.Cache) *BookService {
	return &BookService{
		bookRepo: bookRepo,
		userRepo: userRepo,
		cache:    c,
	}
}

// requireAdmin resolves the requester and checks the administrator
// threshold. Missing requester and insufficient role are distinct
// failures: the first maps to 401, the second to 403.
func (s *BookService) requireAdmin(requesterID uuid.UUID) (*models.User, error) {
	requester, err := s.userRepo.GetUserByID(requesterID)
	if err != nil {
		logger.Log.Error("Failed to resolve requester",
			zap.String("requester_id", requesterID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if requester == nil {
		return nil, ErrRequesterNotFound
	}
	if !requester.IsAdmin() {
		logger.Log.Warn("Admin gate rejected requester",
			zap.String("requester_id", requesterID.String()),
			zap.Int("role", requester.Role),
		)
		return nil, ErrNotAdministrator
	}
	return requester, nil
}

// Create persists a new catalog entry. publicationDate is optional at
// creation; the listing cache is invalidated before returning.
func (s *BookService) Create(ctx context.Context, requesterID uuid.UUID, input BookInput) (*models.Book, error) {
	if _, err := s.requireAdmin(requesterID); err != nil {
		return nil, err
	}

	if input.Title == "" || input.Author == "" || len(input.Genres) == 0 {
		return nil, ErrMissingFields
	}

	book := &models.Book{
		ID:              uuid.New(),
		Title:           input.Title,
		Author:          input.Author,
		PublicationDate: input.PublicationDate,
		Genres:          input.Genres,
	}

	if err := s.bookRepo.CreateBook(book); err != nil {
		logger.Log.Error("Failed to create book",
			zap.String("title", input.Title),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.cache.Delete(ctx, cache.AllBooksKey); err != nil {
		logger.Log.Error("Failed to invalidate listing cache",
			zap.String("book_id", book.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Book created",
		zap.String("book_id", book.ID.String()),
		zap.String("title", book.Title),
		zap.String("requester_id", requesterID.String()),
	)

	return book, nil
}

// List returns the full catalog, read through the listing cache.
func (s *BookService) List(ctx context.Context) ([]models.Book, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.AllBooksKey, cache.DefaultTTL, func() ([]models.Book, error) {
		return s.bookRepo.GetAllBooks()
	})
}

// Get returns a single catalog entry, read through its cache key.
func (s *BookService) Get(ctx context.Context, id uuid.UUID) (models.Book, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.BookKey(id), cache.DefaultTTL, func() (models.Book, error) {
		book, err := s.bookRepo.GetBookByID(id)
		if err != nil {
			return models.Book{}, err
		}
		if book == nil {
			return models.Book{}, ErrBookNotFound
		}
		return *book, nil
	})
}

// Update replaces every mutable field of an existing entry and
// invalidates both the entry's key and the listing key.
func (s *BookService) Update(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, input BookInput) (*models.Book, error) {
	if _, err := s.requireAdmin(requesterID); err != nil {
		return nil, err
	}

	if input.Title == "" || input.Author == "" || input.PublicationDate == "" || len(input.Genres) == 0 {
		return nil, ErrMissingFields
	}

	book, err := s.bookRepo.GetBookByID(id)
	if err != nil {
		logger.Log.Error("Failed to load book for update",
			zap.String("book_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	book.Title = input.Title
	book.Author = input.Author
	book.PublicationDate = input.PublicationDate
	book.Genres = input.Genres

	if err := s.bookRepo.UpdateBook(book); err != nil {
		logger.Log.Error("Failed to update book",
			zap.String("book_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.cache.Delete(ctx, cache.AllBooksKey, cache.BookKey(id)); err != nil {
		logger.Log.Error("Failed to invalidate book caches",
			zap.String("book_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Book updated",
		zap.String("book_id", id.String()),
		zap.String("requester_id", requesterID.String()),
	)

	return book, nil
}

// Delete removes an entry. Deleting an id that does not exist is still a
// success, and invalidates the same cache keys.
func (s *BookService) Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	if _, err := s.requireAdmin(requesterID); err != nil {
		return err
	}

	if err := s.bookRepo.DeleteBook(id); err != nil {
		logger.Log.Error("Failed to delete book",
			zap.String("book_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	if err := s.cache.Delete(ctx, cache.AllBooksKey, cache.BookKey(id)); err != nil {
		logger.Log.Error("Failed to invalidate book caches",
			zap.String("book_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Book deleted",
		zap.String("book_id", id.String()),
		zap.String("requester_id", requesterID.String()),
	)

	return nil
}
