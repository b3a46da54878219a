package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

var ErrMissingDBName = errors.New("db: PERSONAL_DATA_DB_NAME is not set")

// PersonalDataDSN builds the connection string for the personal-data
// database. Empty fields fall back to root@localhost.
func PersonalDataDSN(username, password, host, name string) (string, error) {
	if name == "" {
		return "", ErrMissingDBName
	}
	if username == "" {
		username = "root"
	}
	if host == "" {
		host = "localhost"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     host,
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	return u.String(), nil
}

// OpenPersonalData connects to the database holding the users table that
// the filtered logger reads.
func OpenPersonalData(ctx context.Context, username, password, host, name string) (*DB, error) {
	dsn, err := PersonalDataDSN(username, password, host, name)
	if err != nil {
		return nil, err
	}

	conn, err := Open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db: personal data %s@%s/%s: %w", username, host, name, err)
	}
	return conn, nil
}
