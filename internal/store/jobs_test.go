package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDeleteJobCommitsBothDeletes(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()
	db := &DB{connection: conn}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM candidates WHERE job_id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM jobs WHERE id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := db.DeleteJob(context.Background(), 1); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteJobRollsBackWhenJobDeleteFails(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()
	db := &DB{connection: conn}

	// The candidates are gone inside the transaction; a failure on the jobs
	// row must roll that back so neither delete sticks.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM candidates WHERE job_id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM jobs WHERE id").
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	if err := db.DeleteJob(context.Background(), 1); err == nil {
		t.Fatal("expected DeleteJob to fail")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteJobMissingJobRollsBack(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()
	db := &DB{connection: conn}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM candidates WHERE job_id").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM jobs WHERE id").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := db.DeleteJob(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestClaimAutoScreenClaimsOnce(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()
	db := &DB{connection: conn}

	mock.ExpectExec("UPDATE jobs SET auto_screened = TRUE").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE jobs SET auto_screened = TRUE").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := db.ClaimAutoScreen(context.Background(), 1)
	if err != nil || !claimed {
		t.Fatalf("first claim = (%v, %v), want (true, nil)", claimed, err)
	}
	claimed, err = db.ClaimAutoScreen(context.Background(), 1)
	if err != nil || claimed {
		t.Fatalf("second claim = (%v, %v), want (false, nil)", claimed, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
