package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// simulationRepository is the PostgreSQL-backed [SimulationRepository].
// Statements are built with squirrel (see sql_queries.go).
type simulationRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSimulationRepository(db *DB, logger *logger.Logger) SimulationRepository {
	logger.Debug().Msg("creating simulation repository")
	return &simulationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *simulationRepository) Create(ctx context.Context, sim models.Simulation) (models.Simulation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSimulationQuery(sim)
	if err != nil {
		return models.Simulation{}, err
	}

	var created models.Simulation
	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		sim, err := scanSimulation(row)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		created = sim
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*simulationRepository.Create").Int64("user_id", sim.UserID).Msg("error creating simulation")
		return models.Simulation{}, classifySimulationError(err)
	}

	return created, nil
}

func (r *simulationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Simulation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserSimulationsQuery(userID)
	if err != nil {
		return nil, err
	}

	var simulations []models.Simulation
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		simulations = make([]models.Simulation, 0)
		for rows.Next() {
			sim, err := scanSimulation(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			simulations = append(simulations, sim)
		}

		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*simulationRepository.ListByUser").Int64("user_id", userID).Msg("error listing simulations")
		return nil, err
	}

	return simulations, nil
}

// Update returns [ErrSimulationNotFound] when sim.ID does not exist or
// belongs to another user.
func (r *simulationRepository) Update(ctx context.Context, sim models.Simulation) (models.Simulation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSimulationQuery(sim)
	if err != nil {
		return models.Simulation{}, err
	}

	var updated models.Simulation
	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		sim, err := scanSimulation(row)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		updated = sim
		return nil
	})

	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Simulation{}, ErrSimulationNotFound
	default:
		log.Err(err).Str("func", "*simulationRepository.Update").Int64("simulation_id", sim.ID).Msg("error updating simulation")
		return models.Simulation{}, classifySimulationError(err)
	}
}

// Delete returns [ErrSimulationNotFound] when nothing was removed, so a
// repeated delete of the same id fails.
func (r *simulationRepository) Delete(ctx context.Context, userID, simulationID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSimulationQuery(userID, simulationID)
	if err != nil {
		return err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*simulationRepository.Delete").Int64("simulation_id", simulationID).Msg("error deleting simulation")
		return err
	}

	if affected == 0 {
		return ErrSimulationNotFound
	}

	return nil
}

// classifySimulationError maps constraint violations to the not-found
// sentinel where the owning user disappeared, and otherwise wraps err.
func classifySimulationError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: owner does not exist", ErrNoUserWasFound)
	case "":
		return err
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
