package orderful

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication: malformed requests, authentication
// problems, unexpected responses.
//
// Enable it with WithDebugLogging or by setting ORDERFUL_DEBUG=true (or
// DEBUG=true). Dumps include full headers and bodies, API key included, so
// keep it out of production logs.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// ORDERFUL_DEBUG targets this SDK specifically; DEBUG is the general flag
// common in development workflows. Either set to "true" enables dumping.
func debugLoggingRequested() bool {
	return os.Getenv("ORDERFUL_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
