package changelog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Result is the outcome of a reorganize run. Output is always printable: the
// reorganized document on success, the untouched input otherwise.
type Result struct {
	Output      string
	Reorganized bool
	Categories  int
}

// Reorganize runs parse -> resolve -> group -> render over the flat document.
// Empty input, input without PR headings, and an empty rendered result all
// pass the original document through unchanged and succeed. Any failure
// inside the pipeline also passes the input through, but with a non-nil
// error; a caller never sees a partially transformed document.
func Reorganize(ctx context.Context, logger *slog.Logger, resolver Resolver, input string) (result Result, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	result = Result{Output: input}
	if strings.TrimSpace(input) == "" {
		return result, nil
	}

	defer func() {
		if r := recover(); r != nil {
			result = Result{Output: input}
			err = fmt.Errorf("reorganize changelog: %v", r)
		}
	}()

	records := Parse(input)
	if len(records) == 0 {
		logger.Debug("no pull request headings found")
		return result, nil
	}

	// One resolution per PR, in parse order. Failures degrade that PR to
	// zero labels and the run continues.
	for i := range records {
		labels, lerr := resolver.Labels(ctx, records[i])
		if lerr != nil {
			logger.Warn("label lookup failed, treating PR as unlabeled",
				"pr", records[i].Number,
				"error", lerr,
			)
			continue
		}
		ApplyLabels(&records[i], labels)
	}

	grouped := Group(records)
	rendered := Render(grouped)
	if rendered == "" {
		return result, nil
	}

	return Result{
		Output:      rendered,
		Reorganized: true,
		Categories:  len(grouped.Categories),
	}, nil
}
