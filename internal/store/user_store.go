// Package store implémente l'accès Postgres aux utilisateurs, au catalogue
// d'exercices et aux entrées journalisées. Les moteurs de calcul consomment
// ces stores au travers de petites interfaces définies chez eux.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/takedajouji/FitU/internal/apperrors"
	"github.com/takedajouji/FitU/internal/database"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/scanner"
)

const userSelectColumns = `
	u.id, u.name, u.email, u.avatar,
	u.age, u.weight, u.height,
	u.activity_level, u.fitness_goal, u.daily_calorie_goal,
	u.join_date, u.created_at, u.updated_at,
	u.created_by, u.updated_by`

type UserStore struct{}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// GetByID retourne le profil d'un utilisateur, apperrors.NotFoundError si absent
func (s *UserStore) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+userSelectColumns+`
		FROM users u
		WHERE u.id=$1 AND u.deleted_at IS NULL`,
		id,
	)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", id)
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return user, nil
}

// GetByEmail retourne le profil et le hash du mot de passe pour l'authentification
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.UserProfile, string, error) {
	var id string
	var passwordHash string
	err := database.DB.QueryRow(ctx, `
		SELECT id, password_hash FROM users
		WHERE email=$1 AND deleted_at IS NULL`,
		email,
	).Scan(&id, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.NewNotFound("user", email)
		}
		return nil, "", fmt.Errorf("could not get user by email: %w", err)
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	return user, passwordHash, nil
}

// Create insère un nouvel utilisateur et renseigne id et dates d'audit
func (s *UserStore) Create(ctx context.Context, user *model.UserProfile, passwordHash string) error {
	err := database.DB.QueryRow(ctx, `
		INSERT INTO users(name, email, password_hash, avatar, age, weight, height,
			activity_level, fitness_goal, daily_calorie_goal,
			join_date, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW(),NOW())
		RETURNING id, join_date, created_at, updated_at`,
		user.Name, user.Email, passwordHash, user.Avatar, user.Age,
		user.Weight, user.Height,
		user.ActivityLevel, user.FitnessGoal, user.DailyCalorieGoal,
	).Scan(&user.ID, &user.JoinDate, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

// Update met à jour le profil (nom, mesures, niveau d'activité, objectifs)
func (s *UserStore) Update(ctx context.Context, user *model.UserProfile) error {
	res, err := database.DB.Exec(ctx, `
		UPDATE users
		SET name=$1, age=$2, weight=$3, height=$4,
			activity_level=$5, fitness_goal=$6, daily_calorie_goal=$7,
			updated_at=NOW(), updated_by=$8
		WHERE id=$8 AND deleted_at IS NULL`,
		user.Name, user.Age, user.Weight, user.Height,
		user.ActivityLevel, user.FitnessGoal, user.DailyCalorieGoal,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return apperrors.NewNotFound("user", user.ID)
	}
	return nil
}

// UpdateAvatar met à jour l'URL de l'avatar
func (s *UserStore) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	res, err := database.DB.Exec(ctx, `
		UPDATE users SET avatar=$1, updated_at=NOW(), updated_by=$2
		WHERE id=$2 AND deleted_at IS NULL`,
		avatarURL, id,
	)
	if err != nil {
		return fmt.Errorf("could not update avatar: %w", err)
	}
	if res.RowsAffected() == 0 {
		return apperrors.NewNotFound("user", id)
	}
	return nil
}
