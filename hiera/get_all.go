// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hiera-client/models"
)

// GetAll resolves keys one after another with [Client.Get] and returns a
// result for every distinct key. A failed key is recorded in its
// [models.LookupResult] and does not stop the batch, unless the client was
// built with [WithStopOnError]; then the results gathered so far are
// returned together with the first failure.
//
// When ctx is done the batch stops and ctx's error is returned with the
// partial results.
func (c *Client) GetAll(ctx context.Context, keys []string, overrides map[string]string) (map[string]models.LookupResult, error) {
	results := make(map[string]models.LookupResult, len(keys))

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if _, done := results[key]; done {
			continue
		}

		value, err := c.Get(ctx, key, overrides)
		results[key] = models.LookupResult{Key: key, Value: value, Err: err}

		if err != nil && c.stopOnError {
			return results, fmt.Errorf("batch stopped at key %q: %w", key, err)
		}
	}

	return results, nil
}
