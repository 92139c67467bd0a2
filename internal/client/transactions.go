package client

import (
	"context"
	"net/http"
)

// SubmitTransaction submits a transaction for an existing applicant.
func (c *Client) SubmitTransaction(ctx context.Context, applicantID string, txn Transaction) (*TransactionResult, error) {
	body, err := jsonBody(txn)
	if err != nil {
		return nil, err
	}
	var out TransactionResult
	if err := c.doJSON(ctx, http.MethodPost, applicantPath(applicantID)+"/kyt/txns/-/data", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTransaction deletes a transaction by its service-side id.
func (c *Client) DeleteTransaction(ctx context.Context, txnID string) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.doJSON(ctx, http.MethodDelete, "/resources/kyt/txns/"+pathSegment(txnID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkTransactionImport imports many transactions in one newline-delimited
// JSON request. The whole joined body is signed.
func (c *Client) BulkTransactionImport(ctx context.Context, txns []BulkTransaction) (*BulkImportResult, error) {
	body, err := ndjsonBody(txns)
	if err != nil {
		return nil, err
	}
	var out BulkImportResult
	if err := c.doJSON(ctx, http.MethodPost, "/resources/kyt/misc/txns/import", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportWalletAddresses imports wallet addresses for Travel Rule checks as a
// newline-delimited JSON request.
func (c *Client) ImportWalletAddresses(ctx context.Context, addrs []WalletAddress) (*WalletImportResult, error) {
	body, err := ndjsonBody(addrs)
	if err != nil {
		return nil, err
	}
	var out WalletImportResult
	if err := c.doJSON(ctx, http.MethodPost, "/resources/kyt/txns/-/importAddress", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
