package mocks

import (
	"context"

	"venuely/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
	err error
}

// WithTx implements postgres.Transactor. fn receives a nil transaction, so
// repositories handed to it must be mocks.
func (t *transactorImpl) WithTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	if t.err != nil {
		return t.err
	}

	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}

// NewFailingTransactor returns a transactor whose BEGIN always fails with err.
func NewFailingTransactor(err error) postgres.Transactor {
	return &transactorImpl{err: err}
}
