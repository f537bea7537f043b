// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/config"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/infra/dependency"
	"github.com/eternal-wealth/toolkit/internal/integration/janitor"
	"github.com/eternal-wealth/toolkit/internal/integration/persistence"
	"github.com/eternal-wealth/toolkit/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Session state
	backend   string
	janitor   *janitor.Janitor
	clock     *mock.Time
	redis     *mock.Redis
	sessionID string
	saved     map[string]string

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Session.TTL = time.Hour

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			clock:          mock.NewTime(),
			saved:          make(map[string]string),
			cfg:            cfg,
		}

		if err := tc.useBackend(config.BackendMemory); err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil {
			tc.close()
		}
		return ctx, nil
	})

	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerSetupSteps registers backend and clock steps.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the session backend is "([^"]*)"$`, theSessionBackendIs)
	ctx.Step(`^I have started a session$`, iHaveStartedASession)
	ctx.Step(`^(\d+) minutes pass$`, minutesPass)
	ctx.Step(`^the session janitor runs$`, theSessionJanitorRuns)
	ctx.Step(`^the sqlite store should hold (\d+) sessions?$`, theSQLiteStoreShouldHoldSessions)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
}

// useBackend rebuilds the server on top of the named session backend.
func (tc *TestContext) useBackend(backend string) error {
	tc.close()

	storage := &dependency.Storage{Backend: backend, Close: func() error { return nil }}
	switch backend {
	case config.BackendMemory:
		storage.Repository = persistence.NewMemorySessionRepository(tc.cfg.Session.TTL, persistence.WithClock(tc.clock.Now))
	case config.BackendRedis:
		tc.redis = mock.NewRedis()
		if err := tc.redis.Clear(context.Background()); err != nil {
			return err
		}
		storage.Repository = persistence.NewRedisSessionRepository(tc.redis.Client, tc.cfg.Redis.KeyPrefix, tc.cfg.Session.TTL)
	case config.BackendSQLite:
		database := mock.NewDb()
		if err := database.ClearDB(); err != nil {
			return err
		}
		storage.Repository = persistence.NewSQLiteSessionRepository(database.DbConn, tc.cfg.Session.TTL, persistence.WithClock(tc.clock.Now))
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	injector, err := dependency.NewInjector(tc.cfg, storage)
	if err != nil {
		return err
	}

	tc.backend = backend
	tc.janitor = janitor.New(
		session.NewEvictExpiredSessionsUseCase(storage.Repository).WithClock(tc.clock.Now),
		janitor.DefaultConfig(),
	)
	tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))
	return nil
}

func (tc *TestContext) close() {
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
}

// expand replaces {session} and saved {name} placeholders.
func (tc *TestContext) expand(text string) string {
	text = strings.ReplaceAll(text, "{session}", tc.sessionID)
	for name, value := range tc.saved {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

func (tc *TestContext) send(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// field resolves a dotted path such as "checklists.2.items.0.key".
func (tc *TestContext) field(path string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", path)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theSessionBackendIs(ctx context.Context, backend string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return ctx, tc.useBackend(backend)
}

func iHaveStartedASession(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.send(http.MethodPost, "/api/v1/sessions", nil); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("expected 201 starting session, got %d", tc.response.StatusCode)
	}

	id, err := tc.field("session.id")
	if err != nil {
		return ctx, err
	}
	tc.sessionID = fmt.Sprintf("%v", id)
	return ctx, nil
}

func minutesPass(ctx context.Context, minutes int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	d := time.Duration(minutes) * time.Minute
	tc.clock.Advance(d)
	if tc.backend == config.BackendRedis && tc.redis != nil {
		tc.redis.FastForward(d)
	}
	return nil
}

func theSessionJanitorRuns(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.janitor.SweepNow(ctx)
	return nil
}

func theSQLiteStoreShouldHoldSessions(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.backend != config.BackendSQLite {
		return fmt.Errorf("scenario is using the %s backend", tc.backend)
	}

	count, err := mock.NewDb().CountSessions()
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d stored sessions, got %d", expected, count)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.send(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.send(method, endpoint, bytes.NewBufferString(tc.expand(body.Content)))
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return nil
}

func iSaveTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.field(field)
	if err != nil {
		return err
	}
	tc.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.field(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != tc.expand(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.field(field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.field(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(items) != expected {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, expected, len(items))
	}
	return nil
}
