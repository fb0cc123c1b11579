package dto

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	"github.com/SscSPs/fx_deal_system/internal/platform/validation"
)

// DealBatchItem is one element of a bulk import body.
type DealBatchItem struct {
	// DealUniqueID is read on its own so it is known even when the rest of the item is malformed.
	DealUniqueID string
	Request      DealRequest
	// DecodeErr is an apperrors.ErrInvalidDeal error when the item could not be decoded.
	DecodeErr error
}

// DealBatch keeps every item of a bulk import body at its original position.
type DealBatch struct {
	Items []DealBatchItem
}

// DecodeDealBatch decodes data as a JSON array of deals, each element on its own.
// It fails only when data itself is not a JSON array; a malformed element is kept as a failed item.
func DecodeDealBatch(data []byte) (*DealBatch, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	batch := &DealBatch{Items: make([]DealBatchItem, len(raws))}
	for i, raw := range raws {
		var key struct {
			DealUniqueID string `json:"dealUniqueId"`
		}
		_ = json.Unmarshal(raw, &key)

		item := DealBatchItem{DealUniqueID: key.DealUniqueID}
		if err := json.Unmarshal(raw, &item.Request); err != nil {
			item.Request = DealRequest{}
			item.DecodeErr = apperrors.NewInvalidDealErrorf(err, "Malformed deal: %s", decodeFailureReason(err))
		}
		batch.Items[i] = item
	}
	return batch, nil
}

// Requests returns the decoded requests in order, skipping the items that failed to decode.
func (b *DealBatch) Requests() []DealRequest {
	reqs := make([]DealRequest, 0, len(b.Items))
	for _, item := range b.Items {
		if item.DecodeErr == nil {
			reqs = append(reqs, item.Request)
		}
	}
	return reqs
}

// Merge lays the importer's results for Requests() back over the full batch, so the returned
// slice has one entry per item and malformed items are reported FAILED at their own index.
func (b *DealBatch) Merge(results []DealResponse) []DealResponse {
	merged := make([]DealResponse, len(b.Items))
	next := 0
	for i, item := range b.Items {
		switch {
		case item.DecodeErr != nil:
			merged[i] = NewFailedDealResponse(item.DealUniqueID, item.DecodeErr.Error())
		case next < len(results):
			merged[i] = results[next]
			next++
		default:
			merged[i] = NewFailedDealResponse(item.DealUniqueID, "Deal was not processed")
		}
	}
	return merged
}

func decodeFailureReason(err error) string {
	fields, ok := validation.FieldErrors(err)
	if !ok {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return "deal must be a JSON object"
		}
		return err.Error()
	}
	reasons := make([]string, 0, len(fields))
	for _, reason := range fields {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	return strings.Join(reasons, "; ")
}
