package sqlite

import (
	"context"
	"strings"
	"unicode"

	sq "github.com/Masterminds/squirrel"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/georgysavva/scany/v2/sqlscan"
)

type postRow struct {
	ID             string `db:"id"`
	Title          string `db:"title"`
	Body           string `db:"body"`
	AuthorID       string `db:"author_id"`
	CreatedAt      int64  `db:"created_at"`
	AuthorUsername string `db:"author_username"`
	AuthorEmail    string `db:"author_email"`
}

func (r postRow) post() domain.Post {
	return domain.Post{
		ID:        idx.ID(r.ID),
		Title:     r.Title,
		Body:      r.Body,
		AuthorID:  idx.ID(r.AuthorID),
		CreatedAt: fromMillis(r.CreatedAt),
	}
}

type postsRepo struct {
	q querier
}

func (r *postsRepo) Create(ctx context.Context, p domain.Post) error {
	query, args, err := psql.Insert("posts").
		Columns("id", "title", "body", "author_id", "created_at").
		Values(p.ID.String(), p.Title, p.Body, p.AuthorID.String(), toMillis(p.CreatedAt)).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, query, args...)
	return mapConstraint(err)
}

func (r *postsRepo) Get(ctx context.Context, id idx.ID) (domain.Post, error) {
	query, args, err := psql.
		Select("id", "title", "body", "author_id", "created_at").
		From("posts").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return domain.Post{}, err
	}

	var row postRow
	if err := sqlscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return row.post(), nil
}

func (r *postsRepo) Update(ctx context.Context, id idx.ID, title, body string) error {
	query, args, err := psql.Update("posts").
		Set("title", title).
		Set("body", body).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, query, args...)
}

func (r *postsRepo) Delete(ctx context.Context, id idx.ID) error {
	query, args, err := psql.Delete("posts").Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, query, args...)
}

func (r *postsRepo) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *postsRepo) Query(ctx context.Context, sel store.PostSelector, order domain.PostOrder) ([]store.PostRow, error) {
	q := psql.
		Select(
			"p.id", "p.title", "p.body", "p.author_id", "p.created_at",
			"u.username AS author_username", "u.email AS author_email",
		).
		From("posts p").
		Join("users u ON u.id = p.author_id")

	if !sel.ID.IsZero() {
		q = q.Where(sq.Eq{"p.id": sel.ID.String()})
	}
	if !sel.AuthorID.IsZero() {
		q = q.Where(sq.Eq{"p.author_id": sel.AuthorID.String()})
	}

	search := sel.Text != ""
	if search {
		match := matchExpr(sel.Text)
		if match == "" {
			return nil, nil
		}
		q = q.Join("posts_fts ON posts_fts.rowid = p.seq").Where("posts_fts MATCH ?", match)
	}

	switch {
	case order == domain.OrderRelevance && search:
		q = q.OrderBy("bm25(posts_fts)", "p.created_at DESC")
	case order == domain.OrderOldest:
		q = q.OrderBy("p.created_at ASC", "p.id ASC")
	default:
		q = q.OrderBy("p.created_at DESC", "p.id DESC")
	}

	if sel.Limit > 0 {
		q = q.Limit(uint64(sel.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []postRow
	if err := sqlscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]store.PostRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, store.PostRow{
			Post:           row.post(),
			AuthorUsername: row.AuthorUsername,
			AuthorEmail:    row.AuthorEmail,
		})
	}
	return out, nil
}

func (r *postsRepo) CountByAuthor(ctx context.Context, authorID idx.ID) (int, error) {
	return count(ctx, r.q, psql.Select("COUNT(*)").From("posts").Where(sq.Eq{"author_id": authorID.String()}))
}

// matchExpr turns free text into an FTS5 query matching any of its words.
// Each word is quoted so FTS5 operators in user input are taken literally.
func matchExpr(text string) string {
	words := strings.Fields(text)
	terms := make([]string, 0, len(words))
	for _, w := range words {
		if strings.IndexFunc(w, isWordRune) < 0 {
			continue
		}
		terms = append(terms, `"`+strings.ReplaceAll(w, `"`, `""`)+`"`)
	}
	return strings.Join(terms, " OR ")
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func count(ctx context.Context, q querier, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
