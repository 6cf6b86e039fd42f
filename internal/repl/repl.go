// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package repl implements the interactive read-eval-print loop: read one
// line, parse and evaluate it against a shared global environment, and
// print either the result's canonical representation or the error's
// display string. Reader and evaluator errors are never fatal to the
// loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"

	"github.com/holomush/dial/internal/env"
	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/eval"
	"github.com/holomush/dial/internal/metrics"
	"github.com/holomush/dial/internal/object"
	"github.com/holomush/dial/internal/reader"
	"github.com/holomush/dial/pkg/errutil"
)

var tracer = otel.Tracer("github.com/holomush/dial/internal/repl")

// Loop reads lines from in until EOF, evaluating each against a single
// shared global Environment and writing the prompt and result to out.
// Every line gets its own ULID for correlating its span and log lines. m
// may be nil, in which case metric recording is a no-op.
func Loop(ctx context.Context, in io.Reader, out io.Writer, prompt string, global *env.Environment, logger *slog.Logger, m *metrics.Metrics) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		callID := ulid.Make()
		lineCtx, span := tracer.Start(ctx, "dial.repl.line")
		logger := logger.With("call_id", callID.String())
		start := time.Now()

		expr, err := reader.Read(line)
		if err != nil {
			m.RecordParse(strings.ToLower(errs.KindOf(err).String()))
			span.RecordError(err)
			span.End()
			errutil.LogErrorContext(lineCtx, logger, "read failed", err, "kind", errs.KindOf(err).String())
			fmt.Fprintln(out, errs.Display(err))
			continue
		}
		m.RecordParse("ok")

		result, err := eval.Eval(lineCtx, expr, global)
		m.RecordEnvDepth(global.Depth())
		if err != nil {
			m.RecordEval("error", time.Since(start))
			span.RecordError(err)
			span.End()
			errutil.LogErrorContext(lineCtx, logger, "evaluation failed", err, "kind", errs.KindOf(err).String())
			fmt.Fprintln(out, errs.Display(err))
			continue
		}

		m.RecordEval("ok", time.Since(start))
		span.End()
		fmt.Fprintln(out, object.Write(result))
	}
}
