package services

import (
	"testing"

	"spiderhome-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogUpdateReplacesStatus(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewBlogService(db)

	mock.ExpectQuery("SELECT \\* FROM `blogs` WHERE `blogs`.`id` = \\?").
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "status"}).
			AddRow(7, "Launch Recap", "launch-recap", models.BlogStatusPublished))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `blogs` WHERE slug = \\? AND id <> \\?").
		WithArgs("launch-recap-edited", 7).
		WillReturnRows(countRows(0))
	mock.ExpectExec("UPDATE `blogs` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// A payload without a status demotes a published post back to draft:
	// update is a full-row replace, not a patch.
	blog, err := svc.Update(7, models.Blog{
		Title:   "Launch Recap (edited)",
		Slug:    "launch-recap-edited",
		Content: "updated body",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusDraft, blog.Status)
	assert.Equal(t, "launch-recap-edited", blog.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogUpdateStampsFirstPublish(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewBlogService(db)

	mock.ExpectQuery("SELECT \\* FROM `blogs` WHERE `blogs`.`id` = \\?").
		WithArgs(8, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "status"}).
			AddRow(8, "Roadmap", "roadmap", models.BlogStatusDraft))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `blogs` WHERE slug = \\? AND id <> \\?").
		WithArgs("roadmap", 8).
		WillReturnRows(countRows(0))
	mock.ExpectExec("UPDATE `blogs` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	blog, err := svc.Update(8, models.Blog{
		Title:  "Roadmap",
		Slug:   "roadmap",
		Status: models.BlogStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusPublished, blog.Status)
	require.NotNil(t, blog.PublishedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
