package pgrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

const identityColumns = `id, created_at, email, encrypted_password`

type IdentityRepository struct {
	conn uow.DBTX
}

func NewIdentityRepository(conn uow.DBTX) *IdentityRepository {
	return &IdentityRepository{conn: conn}
}

// Create создает учетную запись. Для занятого email возвращает domain.ErrDuplicateKey.
func (r *IdentityRepository) Create(ctx context.Context, args repoargs.CreateIdentity) (*domain.Identity, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO identities (id, email, encrypted_password)
		VALUES ($1, $2, $3)
		RETURNING `+identityColumns,
		args.ID, args.Email, args.EncryptedPassword,
	)
	identity, err := scanIdentity(row)
	if err != nil {
		return nil, convertErr(err, "creating identity")
	}
	return identity, nil
}

func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE lower(email) = lower($1)`, email)
	identity, err := scanIdentity(row)
	if err != nil {
		return nil, convertErr(err, "finding identity by email %s", email)
	}
	return identity, nil
}

// Delete удаляет учетную запись вместе с профилем (каскадно). Отсутствие записи ошибкой не считается.
func (r *IdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.conn.Exec(ctx, `DELETE FROM identities WHERE id = $1`, id); err != nil {
		return convertErr(err, "deleting identity %s", id)
	}
	return nil
}

func scanIdentity(row rowScanner) (*domain.Identity, error) {
	var i domain.Identity
	if err := row.Scan(&i.ID, &i.CreatedAt, &i.Email, &i.EncryptedPassword); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &i, nil
}
