// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"

	"github.com/quayside/grantd/pkg/logger"
)

// Condition is one step of a grant's precondition chain. Check returns nil
// to continue or an *oauth.Error to stop the chain; it may write resolved
// state into the Exchange for the steps behind it. Conditions never panic
// for business failures.
type Condition interface {
	Name() string
	Check(ctx context.Context, ex *Exchange) error
}

// Chain runs conditions in registration order and stops at the first
// failure, returning it untouched.
type Chain []Condition

// Check implements Condition, so chains nest.
func (c Chain) Check(ctx context.Context, ex *Exchange) error {
	for _, cond := range c {
		if err := cond.Check(ctx, ex); err != nil {
			logger.Debugw("condition failed",
				"condition", cond.Name(),
				"ray_id", ex.RayID,
				"error", err)
			return err
		}
	}
	return nil
}

// Name implements Condition.
func (c Chain) Name() string { return "chain" }
