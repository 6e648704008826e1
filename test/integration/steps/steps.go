package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerSteps wires every step definition onto the scenario context.
func (t *testContext) registerSteps(ctx *godog.ScenarioContext) {
	// Harness
	ctx.Given(`^the API server is running$`, t.theAPIServerIsRunning)
	ctx.Given(`^the login rate limit is (\d+) attempts per minute$`, t.theLoginRateLimitIs)

	// Accounts
	ctx.Given(`^a user exists with username "([^"]*)" and password "([^"]*)"$`, t.aUserExists)
	ctx.Given(`^I am authenticated as "([^"]*)"$`, t.iAmAuthenticatedAs)

	// Ledger fixtures
	ctx.Given(`^I have recorded the following transactions:$`, t.iHaveRecordedTransactions)
	ctx.Given(`^I have a goal "([^"]*)" with target "([^"]*)" and saved "([^"]*)" due "([^"]*)"$`, t.iHaveAGoal)

	// Advisor scripting
	ctx.Given(`^the financial advisor replies "([^"]*)"$`, t.theAdvisorReplies)
	ctx.Given(`^the financial advisor is not configured$`, t.theAdvisorIsNotConfigured)
	ctx.Given(`^the financial advisor fails$`, t.theAdvisorFails)

	// Requests
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequest)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestWithBody)
	ctx.When(`^I update the last goal amount to "([^"]*)"$`, t.iUpdateTheLastGoalAmount)

	// Assertions
	ctx.Then(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, t.theResponseHeaderShouldContain)
	ctx.Then(`^the advisor prompt should contain "([^"]*)"$`, t.theAdvisorPromptShouldContain)
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) theLoginRateLimitIs(attempts int) error {
	t.startServer(attempts)
	return nil
}

func (t *testContext) aUserExists(username, password string) error {
	status, _, err := t.doJSON(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusConflict {
		return fmt.Errorf("registration returned status %d", status)
	}
	return nil
}

func (t *testContext) iAmAuthenticatedAs(username string) error {
	const password = "integration-pass"
	if err := t.aUserExists(username, password); err != nil {
		return err
	}

	status, body, err := t.doJSON(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("login returned status %d", status)
	}

	token, ok := body["access_token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("login response has no access token")
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iHaveRecordedTransactions(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("transaction table needs a header and at least one row")
	}

	cols := map[string]int{}
	for i, cell := range table.Rows[0].Cells {
		cols[cell.Value] = i
	}

	for _, row := range table.Rows[1:] {
		amount, err := strconv.ParseFloat(row.Cells[cols["amount"]].Value, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row.Cells[cols["amount"]].Value, err)
		}

		payload := map[string]any{
			"date":     row.Cells[cols["date"]].Value,
			"amount":   amount,
			"category": row.Cells[cols["category"]].Value,
			"type":     row.Cells[cols["type"]].Value,
		}
		if i, ok := cols["description"]; ok {
			payload["description"] = row.Cells[i].Value
		}

		status, _, err := t.doJSON(http.MethodPost, "/api/v1/transactions", payload)
		if err != nil {
			return err
		}
		if status != http.StatusCreated {
			return fmt.Errorf("transaction fixture returned status %d", status)
		}
	}
	return nil
}

func (t *testContext) iHaveAGoal(name, target, saved, due string) error {
	targetAmount, err := strconv.ParseFloat(target, 64)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", target, err)
	}
	currentAmount, err := strconv.ParseFloat(saved, 64)
	if err != nil {
		return fmt.Errorf("invalid saved amount %q: %w", saved, err)
	}

	status, body, err := t.doJSON(http.MethodPost, "/api/v1/goals", map[string]any{
		"name":           name,
		"target_amount":  targetAmount,
		"current_amount": currentAmount,
		"target_date":    due,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("goal fixture returned status %d", status)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("goal response has no id")
	}
	t.lastGoalID = id
	return nil
}

func (t *testContext) theAdvisorReplies(advice string) error {
	t.advisor.Advice = advice
	return nil
}

func (t *testContext) theAdvisorIsNotConfigured() error {
	t.advisor.Available = false
	return nil
}

func (t *testContext) theAdvisorFails() error {
	t.advisor.Fail = true
	return nil
}

func (t *testContext) iSendARequest(method, endpoint string) error {
	return t.send(method, endpoint, nil)
}

func (t *testContext) iSendARequestWithBody(method, endpoint string, body *godog.DocString) error {
	return t.send(method, endpoint, strings.NewReader(body.Content))
}

func (t *testContext) iUpdateTheLastGoalAmount(amount string) error {
	if t.lastGoalID == "" {
		return fmt.Errorf("no goal has been created")
	}
	currentAmount, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	payload, err := json.Marshal(map[string]any{"current_amount": currentAmount})
	if err != nil {
		return err
	}
	return t.send(http.MethodPatch, "/api/v1/goals/"+t.lastGoalID+"/amount", bytes.NewReader(payload))
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.response.StatusCode, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	actual := t.response.Header.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header %q is %q, expected it to contain %q", header, actual, expected)
	}
	return nil
}

func (t *testContext) theAdvisorPromptShouldContain(expected string) error {
	if t.advisor.LastRequest == nil {
		return fmt.Errorf("the advisor received no request")
	}
	if !strings.Contains(t.advisor.LastRequest.Prompt, expected) {
		return fmt.Errorf("advisor prompt does not contain %q. Prompt: %s", expected, t.advisor.LastRequest.Prompt)
	}
	return nil
}

// send performs a request against the test server, attaching the bearer
// token when a scenario has authenticated.
func (t *testContext) send(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, t.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// doJSON is a helper for fixture steps: it sends a JSON payload and decodes
// the JSON response without touching the recorded scenario response.
func (t *testContext) doJSON(method, endpoint string, payload map[string]any) (int, map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequest(method, t.server.URL+endpoint, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	body := map[string]any{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	return resp.StatusCode, body, nil
}

// lookupField resolves a dotted path into the JSON response body. Numeric
// segments index into arrays.
func (t *testContext) lookupField(path string) (any, error) {
	var data any
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, t.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, t.responseBody)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. Body: %s", path, t.responseBody)
		}
	}
	return current, nil
}
