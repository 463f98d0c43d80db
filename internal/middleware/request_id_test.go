package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// serve runs RequestID with the given inbound header and returns the trace ID
// seen by the handler, the one on the request context and the response header.
func (s *RequestIDTestSuite) serve(inbound string) (seen, correlation, header string) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", nil)
	if inbound != "" {
		req.Header.Set(TraceIDHeader, inbound)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		correlation, _ = c.Request().Context().Value(services.CorrelationIDKey).(string)
		return c.NoContent(http.StatusCreated)
	})(c)
	s.Require().NoError(err)

	return seen, correlation, rec.Header().Get(TraceIDHeader)
}

func (s *RequestIDTestSuite) TestGeneratesUUIDWhenMissing() {
	seen, correlation, header := s.serve("")

	_, err := uuid.Parse(seen)
	s.NoError(err)
	s.Equal(seen, correlation)
	s.Equal(seen, header)
}

func (s *RequestIDTestSuite) TestKeepsWellFormedInboundID() {
	for _, inbound := range []string{"corr-42", "shortcut.ios:7F3A", uuid.NewString()} {
		seen, correlation, header := s.serve(inbound)

		s.Equal(inbound, seen)
		s.Equal(inbound, correlation)
		s.Equal(inbound, header)
	}
}

func (s *RequestIDTestSuite) TestReplacesMalformedInboundID() {
	for _, inbound := range []string{
		strings.Repeat("a", 65),
		"two words",
		"line\nbreak",
		`{"json":true}`,
	} {
		seen, _, header := s.serve(inbound)

		s.NotEqual(inbound, seen)
		_, err := uuid.Parse(seen)
		s.NoError(err, "inbound %q", inbound)
		s.Equal(seen, header)
	}
}

func (s *RequestIDTestSuite) TestGeneratedIDsAreUnique() {
	first, _, _ := s.serve("")
	second, _, _ := s.serve("")

	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_OutsideMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))

	c.Set(TraceIDContextKey, 42)
	s.Empty(GetTraceID(c))
}
