package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	actarepo "github.com/heartmarshall/actas-backend/internal/adapter/postgres/acta"
	"github.com/heartmarshall/actas-backend/internal/adapter/postgres/contributor"
	"github.com/heartmarshall/actas-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/actas-backend/internal/adapter/postgres/milestone"
	"github.com/heartmarshall/actas-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/actas-backend/internal/adapter/postgres/validation"
	"github.com/heartmarshall/actas-backend/internal/auth"
	"github.com/heartmarshall/actas-backend/internal/config"
	"github.com/heartmarshall/actas-backend/internal/service/achievement"
	"github.com/heartmarshall/actas-backend/internal/service/acta"
	"github.com/heartmarshall/actas-backend/internal/service/assignment"
	"github.com/heartmarshall/actas-backend/internal/service/consensus"
	"github.com/heartmarshall/actas-backend/internal/service/lease"
	"github.com/heartmarshall/actas-backend/internal/service/moderation"
	"github.com/heartmarshall/actas-backend/pkg/clock"
)

// Container holds the wired repositories and services shared by the HTTP
// server and the operator CLI.
type Container struct {
	Tx       *postgres.TxManager
	Actas    *actarepo.Repo
	Verifier *auth.Verifier

	Leases       *lease.Service
	Assignments  *assignment.Service
	Moderation   *moderation.Service
	Achievements *achievement.Service
	Workflow     *acta.Service
}

// Wire builds every repository and service on top of pool.
func Wire(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Container {
	clk := clock.Real{}
	rules := consensus.RulesFromConfig(cfg.Consensus)
	tx := postgres.NewTxManager(pool, postgres.WithRetries(cfg.Database.TxRetries))

	actas := actarepo.New(pool)
	stats := contributor.New(pool)
	validations := validation.New(pool)
	reports := report.New(pool)
	transitions := history.New(pool)
	milestones := milestone.New(pool)

	leases := lease.NewService(logger, actas, clk, cfg.Lease)
	assignments := assignment.NewService(logger, actas, leases, stats, clk, rules.Quorum, cfg.Assignment.MaxAttempts)
	mod := moderation.NewService(logger, stats, transitions, validations, reports, actas, tx, clk,
		moderation.PolicyFromConfig(cfg.Moderation), rules)
	achievements := achievement.NewService(logger, milestones, clk)

	workflow := acta.NewService(logger, acta.Deps{
		Actas:        actas,
		Validations:  validations,
		Reports:      reports,
		Stats:        stats,
		Assignments:  assignments,
		Leases:       leases,
		Moderation:   mod,
		Achievements: achievements,
		Tx:           tx,
		Clock:        clk,
	}, rules)

	return &Container{
		Tx:           tx,
		Actas:        actas,
		Verifier:     auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		Leases:       leases,
		Assignments:  assignments,
		Moderation:   mod,
		Achievements: achievements,
		Workflow:     workflow,
	}
}
