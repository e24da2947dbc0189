package betchecker

import (
	"net/url"
	"strconv"

	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"github.com/valyala/bytebufferpool"
)

// BuildURL returns the request URL FetchOverUnder would use for query.
func (c *Client) BuildURL(query overunder.Query) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}
	return c.buildURL(query), nil
}

func (c *Client) buildURL(query overunder.Query) string {
	return c.baseURL + overUnderPath + "?" + encodeQuery(query)
}

// encodeQuery keeps the parameter order player_name, player_id, stat,
// threshold, strict_over. Absent fields are omitted.
func encodeQuery(query overunder.Query) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if query.HasPlayerName() {
		appendParam(buf, "player_name", query.PlayerName)
	}
	if query.HasPlayerID() {
		appendParam(buf, "player_id", strconv.FormatInt(*query.PlayerID, 10))
	}
	appendParam(buf, "stat", query.Stat.String())
	appendParam(buf, "threshold", formatThreshold(query.Threshold))
	if query.StrictOver != nil {
		appendParam(buf, "strict_over", strconv.FormatBool(*query.StrictOver))
	}

	return buf.String()
}

func appendParam(buf *bytebufferpool.ByteBuffer, key, value string) {
	if buf.Len() > 0 {
		_ = buf.WriteByte('&')
	}
	_, _ = buf.WriteString(url.QueryEscape(key))
	_ = buf.WriteByte('=')
	_, _ = buf.WriteString(url.QueryEscape(value))
}

// formatThreshold uses the shortest representation: 23.5, 25, 0.1.
func formatThreshold(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
