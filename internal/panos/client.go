package panos

import (
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aryankumar/panosctl/internal/config"
	"github.com/aryankumar/panosctl/internal/executor"
	"github.com/aryankumar/panosctl/internal/model"
	"github.com/aryankumar/panosctl/pkg/version"
)

// Client talks to the PAN-OS XML management API.
// The embedded http.Client is safe for concurrent use, so a single
// Client can be shared by every worker in a batch.
type Client struct {
	cfg    *config.Config
	base   string
	http   *http.Client
	apiKey string
	retry  executor.Policy
	logger *slog.Logger
}

// SystemInfo is the subset of "show system info" the CLI reports
type SystemInfo struct {
	Hostname  string `xml:"hostname"`
	Model     string `xml:"model"`
	Serial    string `xml:"serial"`
	SWVersion string `xml:"sw-version"`
}

// JobStatus describes a commit job
type JobStatus struct {
	ID       string `xml:"id"`
	Status   string `xml:"status"`
	Result   string `xml:"result"`
	Progress string `xml:"progress"`
}

// Done reports whether the job reached a terminal state
func (j *JobStatus) Done() bool {
	switch strings.ToUpper(j.Status) {
	case "FIN", "FAIL":
		return true
	default:
		return false
	}
}

// Succeeded reports whether a finished job committed successfully
func (j *JobStatus) Succeeded() bool {
	return strings.ToUpper(j.Result) == "OK"
}

// NewClient creates a client from configuration.
// No network traffic happens here; Connect performs the handshake.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.SkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		cfg:  cfg,
		base: fmt.Sprintf("https://%s/api/", cfg.Hostname),
		http: &http.Client{Transport: transport},
		retry: executor.Policy{
			MaxAttempts: cfg.Retry.MaxAttempts,
			BaseDelay:   cfg.Retry.BaseDelay,
			Jitter:      true,
			Retryable:   IsTransient,
		},
		apiKey: cfg.APIKey,
		logger: logger,
	}, nil
}

// Connect builds a client from configuration and authenticates it
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	client, err := NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// Connect authenticates against the device.
// With an API key configured it verifies it by fetching system info;
// otherwise it runs the keygen handshake first.
func (c *Client) Connect(ctx context.Context) error {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would connect", "hostname", c.cfg.Hostname)
		c.apiKey = "mock-api-key"
		return nil
	}

	if c.apiKey == "" {
		key, err := c.GenerateAPIKey(ctx, c.cfg.Username, c.cfg.Password)
		if err != nil {
			return fmt.Errorf("failed to authenticate to %s: %w", c.cfg.Hostname, err)
		}
		c.apiKey = key
	}

	if _, err := c.SystemInfo(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.cfg.Hostname, err)
	}

	c.logger.Info("connected", "hostname", c.cfg.Hostname)
	return nil
}

// GenerateAPIKey exchanges credentials for an API key
func (c *Client) GenerateAPIKey(ctx context.Context, username, password string) (string, error) {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would generate API key", "username", username)
		return "mock-api-key", nil
	}

	params := url.Values{}
	params.Set("type", "keygen")
	params.Set("user", username)
	params.Set("password", password)

	resp, _, err := c.do(ctx, params, false)
	if err != nil {
		return "", err
	}

	if resp.Result.Key == "" {
		return "", &APIError{Kind: KindAuth, Msg: "keygen response contained no key"}
	}
	return resp.Result.Key, nil
}

// SystemInfo fetches identifying information from the device
func (c *Client) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would fetch system info")
		return &SystemInfo{Hostname: c.cfg.Hostname, Model: "mock", Serial: "mock", SWVersion: "mock"}, nil
	}

	params := url.Values{}
	params.Set("type", "op")
	params.Set("cmd", "<show><system><info></info></system></show>")

	resp, _, err := c.do(ctx, params, true)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		System SystemInfo `xml:"system"`
	}
	if err := xml.Unmarshal(resp.Result.doc(), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse system info: %w", err)
	}
	return &parsed.System, nil
}

// SetAddress creates or updates an address object.
// The call is idempotent on the device: setting an existing object
// overwrites its fields.
func (c *Client) SetAddress(ctx context.Context, deviceGroup string, addr model.Address) (string, error) {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would set address", "name", addr.Name, "device_group", deviceGroup)
		return "set", nil
	}

	element, err := marshalElement(addressToEntry(addr))
	if err != nil {
		return "", err
	}

	return c.configSet(ctx, addressXPath(deviceGroup, addr.Name), element)
}

// DeleteAddress removes an address object
func (c *Client) DeleteAddress(ctx context.Context, deviceGroup, name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if c.cfg.Mock {
		c.logger.Info("MOCK: would delete address", "name", name, "device_group", deviceGroup)
		return "deleted", nil
	}

	return c.configDelete(ctx, addressXPath(deviceGroup, name))
}

// GetAddress fetches a single address object
func (c *Client) GetAddress(ctx context.Context, deviceGroup, name string) (*model.Address, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if c.cfg.Mock {
		c.logger.Info("MOCK: would get address", "name", name, "device_group", deviceGroup)
		return &model.Address{Name: name, IPNetmask: "192.0.2.1/32", Description: "mock address object"}, nil
	}

	entries, err := c.configGetEntries(ctx, addressXPath(deviceGroup, name))
	if err != nil {
		return nil, err
	}
	if len(entries.Addresses) == 0 {
		return nil, &APIError{Kind: KindNotFound, Msg: fmt.Sprintf("address %q not found", name)}
	}

	addr := entryToAddress(entries.Addresses[0])
	return &addr, nil
}

// ListAddresses fetches all address objects in a device group
func (c *Client) ListAddresses(ctx context.Context, deviceGroup string) ([]model.Address, error) {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would list addresses", "device_group", deviceGroup)
		return nil, nil
	}

	entries, err := c.configGetEntries(ctx, addressXPath(deviceGroup, ""))
	if err != nil {
		return nil, err
	}

	addrs := make([]model.Address, 0, len(entries.Addresses))
	for _, e := range entries.Addresses {
		addrs = append(addrs, entryToAddress(e))
	}
	return addrs, nil
}

// SetAddressGroup creates or updates an address group
func (c *Client) SetAddressGroup(ctx context.Context, deviceGroup string, grp model.AddressGroup) (string, error) {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would set address group", "name", grp.Name, "device_group", deviceGroup)
		return "set", nil
	}

	element, err := marshalElement(groupToEntry(grp))
	if err != nil {
		return "", err
	}

	return c.configSet(ctx, addressGroupXPath(deviceGroup, grp.Name), element)
}

// DeleteAddressGroup removes an address group
func (c *Client) DeleteAddressGroup(ctx context.Context, deviceGroup, name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if c.cfg.Mock {
		c.logger.Info("MOCK: would delete address group", "name", name, "device_group", deviceGroup)
		return "deleted", nil
	}

	return c.configDelete(ctx, addressGroupXPath(deviceGroup, name))
}

// GetAddressGroup fetches a single address group
func (c *Client) GetAddressGroup(ctx context.Context, deviceGroup, name string) (*model.AddressGroup, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if c.cfg.Mock {
		c.logger.Info("MOCK: would get address group", "name", name, "device_group", deviceGroup)
		return &model.AddressGroup{Name: name, StaticMembers: []string{"mock-member"}}, nil
	}

	entries, err := c.configGetEntries(ctx, addressGroupXPath(deviceGroup, name))
	if err != nil {
		return nil, err
	}
	if len(entries.Groups) == 0 {
		return nil, &APIError{Kind: KindNotFound, Msg: fmt.Sprintf("address group %q not found", name)}
	}

	grp := entryToGroup(entries.Groups[0])
	return &grp, nil
}

// ListAddressGroups fetches all address groups in a device group
func (c *Client) ListAddressGroups(ctx context.Context, deviceGroup string) ([]model.AddressGroup, error) {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would list address groups", "device_group", deviceGroup)
		return nil, nil
	}

	entries, err := c.configGetEntries(ctx, addressGroupXPath(deviceGroup, ""))
	if err != nil {
		return nil, err
	}

	groups := make([]model.AddressGroup, 0, len(entries.Groups))
	for _, e := range entries.Groups {
		groups = append(groups, entryToGroup(e))
	}
	return groups, nil
}

// Commit starts an asynchronous commit and returns the job ID
func (c *Client) Commit(ctx context.Context, description string) (string, error) {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would commit changes")
		return "mock-job-12345", nil
	}

	cmd := "<commit></commit>"
	if description != "" {
		cmd = fmt.Sprintf("<commit><description>%s</description></commit>", xmlEscape(description))
	}

	params := url.Values{}
	params.Set("type", "commit")
	params.Set("cmd", cmd)

	resp, attempts, err := c.do(ctx, params, true)
	if err != nil {
		return "", err
	}
	if resp.Result.Job == "" {
		// "No changes to commit" comes back as a success with no job.
		return "", nil
	}

	c.logger.Info("commit started", "job", resp.Result.Job, "attempts", attempts)
	return resp.Result.Job, nil
}

// CommitStatus fetches the state of a commit job
func (c *Client) CommitStatus(ctx context.Context, jobID string) (*JobStatus, error) {
	if c.cfg.Mock {
		c.logger.Info("MOCK: would check commit status", "job", jobID)
		return &JobStatus{ID: jobID, Status: "FIN", Result: "OK", Progress: "100"}, nil
	}

	params := url.Values{}
	params.Set("type", "op")
	params.Set("cmd", fmt.Sprintf("<show><jobs><id>%s</id></jobs></show>", xmlEscape(jobID)))

	resp, _, err := c.do(ctx, params, true)
	if err != nil {
		return nil, err
	}

	var jobs struct {
		Job JobStatus `xml:"job"`
	}
	if err := xml.Unmarshal(resp.Result.doc(), &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse job status: %w", err)
	}
	if jobs.Job.ID == "" {
		return nil, &APIError{Kind: KindNotFound, Msg: fmt.Sprintf("job %q not found", jobID)}
	}

	return &jobs.Job, nil
}

// validName guards names that reach xpath construction without going
// through model validation first. A quote in a name would break the
// xpath predicate it is embedded in.
func validName(name string) error {
	if err := model.ValidateName(name); err != nil {
		return &APIError{Kind: KindValidation, Msg: err.Error()}
	}
	return nil
}

// xmlEscape escapes user-supplied text for embedding in a cmd
// document. Config payloads go through marshalElement instead.
func xmlEscape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

// configSet issues a config set request
func (c *Client) configSet(ctx context.Context, xpath, element string) (string, error) {
	params := url.Values{}
	params.Set("type", "config")
	params.Set("action", "set")
	params.Set("xpath", xpath)
	params.Set("element", element)

	resp, _, err := c.do(ctx, params, true)
	if err != nil {
		return "", err
	}
	return orDefault(resp.Msg(), "set"), nil
}

// configDelete issues a config delete request
func (c *Client) configDelete(ctx context.Context, xpath string) (string, error) {
	params := url.Values{}
	params.Set("type", "config")
	params.Set("action", "delete")
	params.Set("xpath", xpath)

	resp, _, err := c.do(ctx, params, true)
	if err != nil {
		return "", err
	}
	return orDefault(resp.Msg(), "deleted"), nil
}

// entryList collects both entry layouts a config get can return
type entryList struct {
	Addresses []addressEntry
	Groups    []groupEntry
}

// configGetEntries issues a config get and parses the returned entries.
// The same response shape serves both a whole container and a single
// named entry.
func (c *Client) configGetEntries(ctx context.Context, xpath string) (*entryList, error) {
	params := url.Values{}
	params.Set("type", "config")
	params.Set("action", "get")
	params.Set("xpath", xpath)

	resp, _, err := c.do(ctx, params, true)
	if err != nil {
		return nil, err
	}
	doc := resp.Result.doc()

	var parsed struct {
		AddressEntries []addressEntry `xml:"address>entry"`
		GroupEntries   []groupEntry   `xml:"address-group>entry"`
	}
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse config response: %w", err)
	}

	list := &entryList{
		Addresses: parsed.AddressEntries,
		Groups:    parsed.GroupEntries,
	}
	if len(list.Addresses) > 0 || len(list.Groups) > 0 {
		return list, nil
	}

	// A get on a single entry returns it directly under result. The
	// direct layout is shared between object types, so parse it both
	// ways and let the caller pick.
	var directAddrs struct {
		Entries []addressEntry `xml:"entry"`
	}
	if err := xml.Unmarshal(doc, &directAddrs); err == nil {
		list.Addresses = directAddrs.Entries
	}
	var directGroups struct {
		Entries []groupEntry `xml:"entry"`
	}
	if err := xml.Unmarshal(doc, &directGroups); err == nil {
		list.Groups = directGroups.Entries
	}

	return list, nil
}

// apiResponse is the outer envelope of every XML API reply
type apiResponse struct {
	XMLName xml.Name  `xml:"response"`
	Status  string    `xml:"status,attr"`
	Code    string    `xml:"code,attr"`
	Result  apiResult `xml:"result"`
	MsgBody msgBody   `xml:"msg"`
}

type apiResult struct {
	Key string `xml:"key"`
	Job string `xml:"job"`
	Raw []byte `xml:",innerxml"`
}

// doc re-wraps the inner XML so fragment parsing sees a single root.
// Unmarshalling the raw fragment directly would map its root element
// onto the target struct instead of matching it by name.
func (r *apiResult) doc() []byte {
	return []byte("<result>" + string(r.Raw) + "</result>")
}

type msgBody struct {
	Lines []string `xml:"line"`
	Text  string   `xml:",chardata"`
}

// Msg returns the device's message text, joining <line> elements when
// present
func (r *apiResponse) Msg() string {
	if len(r.MsgBody.Lines) > 0 {
		return strings.Join(r.MsgBody.Lines, "; ")
	}
	return strings.TrimSpace(r.MsgBody.Text)
}

// do issues one API request with the client's retry policy.
// The returned attempt count feeds failure reporting upstream.
func (c *Client) do(ctx context.Context, params url.Values, withKey bool) (*apiResponse, int, error) {
	if withKey {
		params.Set("key", c.apiKey)
	}

	return executor.Retry(ctx, c.retry, func(ctx context.Context) (*apiResponse, error) {
		return c.call(ctx, params)
	})
}

// call issues a single HTTP request and classifies any failure
func (c *Client) call(ctx context.Context, params url.Values) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", version.UserAgent())

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.cfg.Hostname, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, classifyHTTP(httpResp.StatusCode, strings.TrimSpace(string(body)))
	}

	var resp apiResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	if resp.Status != "success" {
		return nil, classifyCode(resp.Code, resp.Msg())
	}

	return &resp, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
