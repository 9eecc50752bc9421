package postgres

import (
	"database/sql"
	"matchup/pkg/domain"
	"time"
)

type PgUser struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Login        string         `db:"login"`
	PasswordHash string         `db:"password"`
	Email        string         `db:"email"`
	PhoneNumber  sql.NullString `db:"phone_number"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Login:        p.Login,
		PasswordHash: p.PasswordHash,
		Email:        p.Email,
		PhoneNumber:  p.PhoneNumber.String,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           int64(user.ID),
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
		Email:        user.Email,
		PhoneNumber: sql.NullString{
			String: user.PhoneNumber,
			Valid:  user.PhoneNumber != "",
		},
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  user.UpdatedAt,
			Valid: !user.UpdatedAt.IsZero(),
		},
	}
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *users[i].ToDomain())
	}

	return out
}

type PgPhoto struct {
	ID     int64 `db:"id" goqu:"skipinsert"`
	UserID int64 `db:"user_id"`

	URL         string `db:"photo_url"`
	StorageKey  string `db:"storage_key"`
	ContentType string `db:"content_type"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPhoto) ToDomain() *domain.Photo {
	return &domain.Photo{
		ID:          domain.PhotoID(p.ID),
		UserID:      domain.UserID(p.UserID),
		URL:         p.URL,
		Key:         p.StorageKey,
		ContentType: p.ContentType,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgPhoto) FromDomain(photo domain.Photo) {
	*p = PgPhoto{
		ID:          int64(photo.ID),
		UserID:      int64(photo.UserID),
		URL:         photo.URL,
		StorageKey:  photo.Key,
		ContentType: photo.ContentType,
		CreatedAt:   photo.CreatedAt,
	}
}

type PgCategory struct {
	ID   int64  `db:"id"   goqu:"skipinsert"`
	Name string `db:"name"`
}

func (p *PgCategory) ToDomain() *domain.Category {
	return &domain.Category{
		ID:      domain.CategoryID(p.ID),
		Name:    p.Name,
		Hobbies: []domain.Hobby{},
	}
}

type PgHobby struct {
	ID         int64  `db:"id"          goqu:"skipinsert"`
	Name       string `db:"name"`
	CategoryID int64  `db:"category_id"`
}

func (p *PgHobby) ToDomain() *domain.Hobby {
	return &domain.Hobby{
		ID:         domain.HobbyID(p.ID),
		Name:       p.Name,
		CategoryID: domain.CategoryID(p.CategoryID),
	}
}

func pgHobbiesToDomain(hobbies []PgHobby) []domain.Hobby {
	out := make([]domain.Hobby, 0, len(hobbies))
	for i := range hobbies {
		out = append(out, *hobbies[i].ToDomain())
	}

	return out
}

type PgLike struct {
	LikerID   int64     `db:"liker_id"`
	LikedID   int64     `db:"liked_id"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

type PgRefusal struct {
	RefuserID int64     `db:"refuser_id"`
	RefusedID int64     `db:"refused_id"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

type PgMessage struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Text       string         `db:"text"`
	PhotoURL   sql.NullString `db:"photo_url"`
	SenderID   int64          `db:"sender_id"`
	ReceiverID int64          `db:"receiver_id"`

	Timestamp time.Time    `db:"timestamp"  goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgMessage) ToDomain() *domain.Message {
	return &domain.Message{
		ID:         domain.MessageID(p.ID),
		Text:       p.Text,
		PhotoURL:   p.PhotoURL.String,
		SenderID:   domain.UserID(p.SenderID),
		ReceiverID: domain.UserID(p.ReceiverID),
		Timestamp:  p.Timestamp,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (p *PgMessage) FromDomain(message domain.Message) {
	*p = PgMessage{
		ID:   int64(message.ID),
		Text: message.Text,
		PhotoURL: sql.NullString{
			String: message.PhotoURL,
			Valid:  message.PhotoURL != "",
		},
		SenderID:   int64(message.SenderID),
		ReceiverID: int64(message.ReceiverID),
		Timestamp:  message.Timestamp,
	}
}

func pgMessagesToDomain(messages []PgMessage) []domain.Message {
	out := make([]domain.Message, 0, len(messages))
	for i := range messages {
		out = append(out, *messages[i].ToDomain())
	}

	return out
}
