package history

import (
	"context"
	"errors"

	"github.com/gabapcia/snip20history/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// pageQuery is the signature shared by the primary and fallback history queries.
type pageQuery func(ctx context.Context, req HistoryRequest) ([]Transaction, error)

// fetchAllPages walks the history from page 0 and concatenates every page.
//
// The loop is strictly sequential: a page is requested only after the previous
// one came back full. It stops on the first page holding fewer (or more) than
// PageSize records, including an empty one. Any error discards the records
// accumulated so far.
func (s *service) fetchAllPages(ctx context.Context, run *fetchRun, req HistoryRequest) ([]Transaction, error) {
	req.PageSize = s.pageSize
	transactions := make([]Transaction, 0)

	for req.Page = 0; ; req.Page++ {
		page, err := s.fetchPage(ctx, req)
		if err != nil {
			return nil, err
		}

		run.recordPage(len(page))
		s.pagesFetched.Add(ctx, 1)
		transactions = append(transactions, page...)

		if uint32(len(page)) != req.PageSize {
			return transactions, nil
		}
	}
}

// fetchPage reads one page from the primary history query and falls back to
// the transfer history when the primary one has no structured result.
func (s *service) fetchPage(ctx context.Context, req HistoryRequest) ([]Transaction, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "history.fetchPage", trace.WithAttributes(
		attribute.Int64("history.page", int64(req.Page)),
		attribute.Int64("history.page_size", int64(req.PageSize)),
	))
	defer span.End()

	page, err := s.queryPage(ctx, s.query.TransactionHistory, req)
	if errors.Is(err, ErrHistoryUnavailable) {
		logger.Debug(ctx, "transaction history unavailable, falling back to transfer history", "history.page", req.Page)
		span.SetAttributes(attribute.Bool("history.fallback", true))

		page, err = s.queryPage(ctx, s.query.TransferHistory, req)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	logger.Debug(ctx, "history page fetched", "history.page", req.Page, "history.records", len(page))
	return page, nil
}

// queryPage runs a single page query through the retry policy.
func (s *service) queryPage(ctx context.Context, q pageQuery, req HistoryRequest) ([]Transaction, error) {
	var page []Transaction
	err := s.do(ctx, func() error {
		var err error
		page, err = q(ctx, req)
		return err
	})

	return page, err
}
