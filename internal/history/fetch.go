package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/snip20history/internal/pkg/logger"
	"github.com/gabapcia/snip20history/internal/pkg/validator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tokenInfoQuery is the SNIP-20 query returning the token metadata.
var tokenInfoQuery = map[string]struct{}{"token_info": {}}

// tokenInfoResponse is the SNIP-20 answer to tokenInfoQuery.
type tokenInfoResponse struct {
	TokenInfo *struct {
		Name     string `json:"name"`
		Symbol   string `json:"symbol"`
		Decimals *uint8 `json:"decimals"`
	} `json:"token_info"`
}

// Fetch implements Service.
func (s *service) Fetch(ctx context.Context, contractAddress string) (History, error) {
	run := newFetchRun()

	ctx = logger.Derive(ctx,
		"run.id", run.id,
		"chain.id", s.chainID,
		"contract.address", contractAddress,
	)

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "history.Fetch", trace.WithAttributes(
		attribute.String("chain.id", s.chainID),
		attribute.String("contract.address", contractAddress),
	))
	defer span.End()

	history, err := s.fetch(ctx, run, contractAddress)
	run.finish(err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if errors.Is(err, ErrTokenSuggested) {
			logger.Info(ctx, "history fetch postponed until the viewing key is added", run.logFields()...)
		} else {
			logger.Error(ctx, "history fetch failed", run.logFields()...)
		}

		return History{}, err
	}

	span.SetAttributes(attribute.Int("history.transactions", len(history.Transactions)))
	logger.Info(ctx, "history fetched", run.logFields()...)
	return history, nil
}

// fetch runs the fetch steps in order and reports every outcome to the user.
func (s *service) fetch(ctx context.Context, run *fetchRun, contractAddress string) (History, error) {
	if err := validator.Validate(fetchRequest{ContractAddress: contractAddress}); err != nil {
		s.notify(ctx, LevelError, "Please enter a valid contract address.")
		return History{}, fmt.Errorf("%w: %w", ErrInvalidContractAddress, err)
	}

	account, err := s.connectWallet(ctx)
	if err != nil {
		s.notify(ctx, LevelError, err.Error())
		return History{}, err
	}

	codeHash, err := s.contractCodeHash(ctx, contractAddress)
	if err != nil {
		s.notify(ctx, LevelError, "Failed to fetch the contract code hash!")
		return History{}, fmt.Errorf("%w: %w", ErrCodeHashUnavailable, err)
	}

	contract := Contract{Address: contractAddress, CodeHash: codeHash}

	viewingKey, err := s.resolveViewingKey(ctx, contractAddress)
	if err != nil {
		return History{}, err
	}

	s.notify(ctx, LevelLoading, "Fetching history...")

	token, err := s.tokenInfo(ctx, contract)
	if err != nil {
		if errors.Is(err, ErrTokenInfoUnavailable) {
			s.notify(ctx, LevelError, "Failed to query `token_info` for this contract.")
		} else {
			s.notify(ctx, LevelError, err.Error())
		}
		return History{}, err
	}

	transactions, err := s.fetchAllPages(ctx, run, HistoryRequest{
		Contract:   contract,
		Address:    account,
		ViewingKey: viewingKey,
	})
	if err != nil {
		s.notify(ctx, LevelError, err.Error())
		return History{}, err
	}

	s.notify(ctx, LevelSuccess, fmt.Sprintf("Found %d transaction(s) in your history!", len(transactions)))

	return History{
		Contract:     contract,
		Token:        token,
		Transactions: transactions,
	}, nil
}

// connectWallet enables the wallet on the configured chain and returns the active account.
func (s *service) connectWallet(ctx context.Context) (string, error) {
	if err := s.wallet.Enable(ctx, s.chainID); err != nil {
		return "", err
	}

	return s.wallet.Account(ctx, s.chainID)
}

// contractCodeHash resolves the code hash of the contract.
func (s *service) contractCodeHash(ctx context.Context, contractAddress string) (string, error) {
	var codeHash string
	err := s.do(ctx, func() error {
		var err error
		codeHash, err = s.query.ContractCodeHash(ctx, contractAddress)
		return err
	})

	return codeHash, err
}

// resolveViewingKey returns the viewing key for the contract.
//
// When the wallet does not know the token, the token is suggested to the
// wallet and ErrTokenSuggested is returned so the user can retry once the key
// has been created.
func (s *service) resolveViewingKey(ctx context.Context, contractAddress string) (string, error) {
	key, err := s.wallet.ViewingKey(ctx, s.chainID, contractAddress)
	if err == nil {
		return key, nil
	}

	if !errors.Is(err, ErrViewingKeyNotFound) {
		s.notify(ctx, LevelError, err.Error())
		return "", err
	}

	s.notify(ctx, LevelInfo, "Token not found, suggesting it to the wallet.")

	if err := s.wallet.SuggestToken(ctx, s.chainID, contractAddress); err != nil {
		s.notify(ctx, LevelError, err.Error())
		return "", fmt.Errorf("suggest token: %w", err)
	}

	s.notify(ctx, LevelSuccess, "Token added successfully. Add its viewing key and try fetching again!")
	return "", ErrTokenSuggested
}

// tokenInfo returns the token metadata, querying the contract only on a cache miss.
func (s *service) tokenInfo(ctx context.Context, contract Contract) (TokenInfo, error) {
	info, err := s.tokenInfoCache.LoadTokenInfo(ctx, s.chainID, contract.Address)
	if err == nil {
		return info, nil
	}

	if !errors.Is(err, ErrTokenInfoNotCached) {
		logger.Warn(ctx, "token info cache unavailable", "error", err)
	}

	var raw json.RawMessage
	err = s.do(ctx, func() error {
		var err error
		raw, err = s.query.QueryContract(ctx, contract, tokenInfoQuery)
		return err
	})
	if err != nil {
		return TokenInfo{}, err
	}

	var res tokenInfoResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %w", ErrTokenInfoUnavailable, err)
	}

	if res.TokenInfo == nil || res.TokenInfo.Decimals == nil {
		return TokenInfo{}, ErrTokenInfoUnavailable
	}

	info = TokenInfo{
		Name:     res.TokenInfo.Name,
		Symbol:   res.TokenInfo.Symbol,
		Decimals: *res.TokenInfo.Decimals,
	}

	if err := s.tokenInfoCache.SaveTokenInfo(ctx, s.chainID, contract.Address, info); err != nil {
		logger.Warn(ctx, "failed to cache token info", "error", err)
	}

	return info, nil
}
