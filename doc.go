// Package goalplan provides the goal funding engine behind the `nivesh`
// command-line tool: it plans the monthly savings needed to reach multiple
// financial goals and decides which existing holdings count toward which goal.
//
// The core functionalities include:
//   - Contribution Solver: time-value-of-money routines (inflation adjustment,
//     lump-sum future value, annuity payments) including an iterative bisection
//     solver for contribution schedules that step up annually.
//   - Goal Projection: classifying goals by horizon, picking a blended expected
//     return, and computing the required monthly contribution per goal.
//   - Retirement Adjustment: netting projected payroll-retirement corpora and
//     recurring contributions against a retirement goal before solving for the
//     residual contribution.
//   - Asset Allocation: a deterministic, idempotent greedy engine that
//     distributes categorized holdings across competing goals under
//     eligibility, horizon-priority, and capacity constraints.
//   - Plan Persistence: tolerant encoding and decoding of the single plan
//     document to and from a human-readable JSON file.
//
// The engine is a pure, stateless recomputation: every entry point takes the
// plan document and a reference date as explicit parameters, mutating nothing
// but the document it is handed.
package goalplan
