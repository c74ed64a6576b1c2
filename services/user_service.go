package services

import (
	"foodbot/entity"
	"foodbot/repository"

	"gorm.io/gorm"
)

type UserService struct {
	DB   *gorm.DB
	Repo *repository.UserRepository
}

func NewUserService(db *gorm.DB, repo *repository.UserRepository) *UserService {
	return &UserService{DB: db, Repo: repo}
}

// GetOrCreate registers the platform identity on first contact.
func (s *UserService) GetOrCreate(telegramID int64, firstName, lastName, username string) (*entity.User, error) {
	u, err := s.Repo.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}
	u = &entity.User{
		TelegramID: telegramID,
		FirstName:  firstName,
		LastName:   lastName,
		Username:   username,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) ByTelegramID(telegramID int64) (*entity.User, error) {
	return s.Repo.GetByTelegramID(telegramID)
}

func (s *UserService) UpdateContact(userID uint, phone, address string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateContact(tx, userID, phone, address)
	})
}
