package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fin-simulator/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING id, email, password_hash, is_active, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, is_active, created_at
    FROM users
    WHERE email = $1;`
)

const simulationsTable = "simulations"

var simulationColumns = []string{
	"id",
	"user_id",
	"amount",
	"term",
	"start_date",
	"end_date",
	"rate_applied",
	"created_at",
}

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertSimulationQuery(sim models.Simulation) (string, []any, error) {
	query, args, err := psql.
		Insert(simulationsTable).
		Columns("user_id", "amount", "term", "start_date", "end_date", "rate_applied").
		Values(sim.UserID, sim.Amount, sim.Term, sim.StartDate, sim.EndDate, sim.RateApplied).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserSimulationsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(simulationColumns...).
		From(simulationsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateSimulationQuery(sim models.Simulation) (string, []any, error) {
	query, args, err := psql.
		Update(simulationsTable).
		Set("amount", sim.Amount).
		Set("term", sim.Term).
		Set("start_date", sim.StartDate).
		Set("end_date", sim.EndDate).
		Set("rate_applied", sim.RateApplied).
		Where(sq.Eq{"id": sim.ID, "user_id": sim.UserID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSimulationQuery(userID, simulationID int64) (string, []any, error) {
	query, args, err := psql.
		Delete(simulationsTable).
		Where(sq.Eq{"id": simulationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func joinColumns() string {
	return strings.Join(simulationColumns, ", ")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSimulation(row rowScanner) (models.Simulation, error) {
	var sim models.Simulation
	err := row.Scan(
		&sim.ID,
		&sim.UserID,
		&sim.Amount,
		&sim.Term,
		&sim.StartDate,
		&sim.EndDate,
		&sim.RateApplied,
		&sim.CreatedAt,
	)
	return sim, err
}
