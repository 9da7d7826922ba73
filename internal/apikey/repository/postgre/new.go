package postgre

import (
	"database/sql"

	"sso-anythingllm-srv/internal/apikey/repository"
	"sso-anythingllm-srv/pkg/encrypter"
	"sso-anythingllm-srv/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	enc encrypter.Encrypter
	l   log.Logger
}

// New returns a repository storing key values encrypted with enc.
func New(db *sql.DB, enc encrypter.Encrypter, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db:  db,
		enc: enc,
		l:   l,
	}
}
