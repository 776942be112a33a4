package postgres

import (
	"context"
	"strings"
	"time"
	"unicode"

	sq "github.com/Masterminds/squirrel"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/georgysavva/scany/v2/pgxscan"
)

type postRow struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	Body           string    `db:"body"`
	AuthorID       string    `db:"author_id"`
	CreatedAt      time.Time `db:"created_at"`
	AuthorUsername string    `db:"author_username"`
	AuthorEmail    string    `db:"author_email"`
}

func (r postRow) post() domain.Post {
	return domain.Post{
		ID:        idx.ID(r.ID),
		Title:     r.Title,
		Body:      r.Body,
		AuthorID:  idx.ID(r.AuthorID),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type postsRepo struct {
	q querier
}

func (r *postsRepo) Create(ctx context.Context, p domain.Post) error {
	query, args, err := psql.Insert("posts").
		Columns("id", "title", "body", "author_id", "created_at").
		Values(p.ID.String(), p.Title, p.Body, p.AuthorID.String(), p.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, query, args...)
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
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
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
	return execOne(ctx, r.q, query, args...)
}

func (r *postsRepo) Delete(ctx context.Context, id idx.ID) error {
	query, args, err := psql.Delete("posts").Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return err
	}
	return execOne(ctx, r.q, query, args...)
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

	var tsq string
	if sel.Text != "" {
		tsq = searchExpr(sel.Text)
		if tsq == "" {
			return nil, nil
		}
		q = q.Where("p.search @@ websearch_to_tsquery('english', ?)", tsq)
	}

	switch {
	case order == domain.OrderRelevance && tsq != "":
		q = q.OrderByClause("ts_rank(p.search, websearch_to_tsquery('english', ?)) DESC", tsq).
			OrderBy("p.created_at DESC")
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
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
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

// searchExpr rewrites free text as a websearch_to_tsquery input matching any
// of its words. Quotes, leading minus signs and the "or" keyword are dropped
// so user input cannot form phrases, negations or empty alternatives.
func searchExpr(text string) string {
	words := strings.Fields(text)
	terms := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimLeft(strings.ReplaceAll(w, `"`, ""), "-")
		if strings.EqualFold(w, "or") || strings.IndexFunc(w, isWordRune) < 0 {
			continue
		}
		terms = append(terms, w)
	}
	return strings.Join(terms, " or ")
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func execOne(ctx context.Context, q querier, query string, args ...any) error {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func count(ctx context.Context, q querier, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}
