package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetAttachment fetches an attachment's descriptor.
func GetAttachment(ctx context.Context, httpClient *http.Client, baseURL, attachmentID string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/attachments/%s", baseURL, attachmentID)
	return doJSON(ctx, httpClient, "get attachment", http.MethodGet, u, nil)
}

// GetAttachmentContent downloads an attachment's content. The bytes are
// returned exactly as served; attachments are not necessarily JSON.
func GetAttachmentContent(ctx context.Context, httpClient *http.Client, baseURL, attachmentID string) ([]byte, error) {
	u := fmt.Sprintf("%s/attachments/%s/content", baseURL, attachmentID)
	return doRaw(ctx, httpClient, "get attachment content", http.MethodGet, u, nil)
}
