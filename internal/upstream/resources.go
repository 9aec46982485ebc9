package upstream

import (
	"context"
	"fmt"
	"net/url"
)

// Typed wrappers over the raw verbs, one per upstream endpoint the console
// consumes. Collections are always fetched whole; the upstream exposes no
// pagination or filter parameters.

/* ===================== AUTH ===================== */

func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var out AuthResponse
	_, err := c.Post(ctx, "/auth/login", creds, &out)
	return out, err
}

/* ===================== USERS ===================== */

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	_, err := c.Get(ctx, "/users", &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id int64) (User, error) {
	var out User
	_, err := c.Get(ctx, fmt.Sprintf("/users/%d", id), &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (User, string, error) {
	var out User
	msg, err := c.Put(ctx, fmt.Sprintf("/users/%d", id), req, &out)
	return out, msg, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) (string, error) {
	return c.Delete(ctx, fmt.Sprintf("/users/%d", id), nil)
}

func (c *Client) EnableUser(ctx context.Context, id int64) (string, error) {
	return c.Patch(ctx, fmt.Sprintf("/users/%d/enable", id), nil, nil)
}

func (c *Client) DisableUser(ctx context.Context, id int64) (string, error) {
	return c.Patch(ctx, fmt.Sprintf("/users/%d/disable", id), nil, nil)
}

/* ===================== VOICE TYPES ===================== */

func (c *Client) ListVoiceTypes(ctx context.Context) ([]VoiceType, error) {
	var out []VoiceType
	_, err := c.Get(ctx, "/voice-types", &out)
	return out, err
}

func (c *Client) CreateVoiceType(ctx context.Context, req VoiceTypeRequest) (VoiceType, string, error) {
	var out VoiceType
	msg, err := c.Post(ctx, "/voice-types", req, &out)
	return out, msg, err
}

func (c *Client) UpdateVoiceType(ctx context.Context, id int64, req VoiceTypeRequest) (VoiceType, string, error) {
	var out VoiceType
	msg, err := c.Put(ctx, fmt.Sprintf("/voice-types/%d", id), req, &out)
	return out, msg, err
}

func (c *Client) DeleteVoiceType(ctx context.Context, id int64) (string, error) {
	return c.Delete(ctx, fmt.Sprintf("/voice-types/%d", id), nil)
}

/* ===================== PACKAGES ===================== */

func (c *Client) ListPackages(ctx context.Context) ([]Package, error) {
	var out []Package
	_, err := c.Get(ctx, "/packages", &out)
	return out, err
}

func (c *Client) SearchPackages(ctx context.Context, name string) ([]Package, error) {
	var out []Package
	_, err := c.Get(ctx, "/packages/search?name="+url.QueryEscape(name), &out)
	return out, err
}

func (c *Client) CreatePackage(ctx context.Context, req PackageRequest) (Package, string, error) {
	var out Package
	msg, err := c.Post(ctx, "/packages", req, &out)
	return out, msg, err
}

func (c *Client) UpdatePackage(ctx context.Context, id int64, req PackageRequest) (Package, string, error) {
	var out Package
	msg, err := c.Put(ctx, fmt.Sprintf("/packages/%d", id), req, &out)
	return out, msg, err
}

func (c *Client) DeletePackage(ctx context.Context, id int64) (string, error) {
	return c.Delete(ctx, fmt.Sprintf("/packages/%d", id), nil)
}

/* ===================== PACKAGE PURCHASES ===================== */

func (c *Client) ListPackagePurchases(ctx context.Context) ([]PackagePurchase, error) {
	var out []PackagePurchase
	_, err := c.Get(ctx, "/purchases", &out)
	return out, err
}

func (c *Client) GetPackagePurchase(ctx context.Context, id int64) (PackagePurchase, error) {
	var out PackagePurchase
	_, err := c.Get(ctx, fmt.Sprintf("/purchases/%d", id), &out)
	return out, err
}

/* ===================== VOICE PURCHASES ===================== */

func (c *Client) ListVoicePurchases(ctx context.Context) ([]VoicePurchase, error) {
	var out []VoicePurchase
	_, err := c.Get(ctx, "/voice-purchase", &out)
	return out, err
}

func (c *Client) ListPendingVoicePurchases(ctx context.Context) ([]VoicePurchase, error) {
	var out []VoicePurchase
	_, err := c.Get(ctx, "/voice-purchase/pending", &out)
	return out, err
}

func (c *Client) ApproveVoicePurchase(ctx context.Context, id int64) (string, error) {
	return c.Put(ctx, fmt.Sprintf("/voice-purchase/%d/approve", id), nil, nil)
}

func (c *Client) RejectVoicePurchase(ctx context.Context, id int64) (string, error) {
	return c.Put(ctx, fmt.Sprintf("/voice-purchase/%d/reject", id), nil, nil)
}

func (c *Client) DeleteVoicePurchase(ctx context.Context, id int64) (string, error) {
	return c.Delete(ctx, fmt.Sprintf("/voice-purchase/%d", id), nil)
}

/* ===================== TOP-UPS ===================== */

func (c *Client) ListTopUps(ctx context.Context) ([]TopUp, error) {
	var out []TopUp
	_, err := c.Get(ctx, "/topup", &out)
	return out, err
}

func (c *Client) ListPendingTopUps(ctx context.Context) ([]TopUp, error) {
	var out []TopUp
	_, err := c.Get(ctx, "/topup/pending", &out)
	return out, err
}

func (c *Client) GetTopUp(ctx context.Context, id int64) (TopUp, error) {
	var out TopUp
	_, err := c.Get(ctx, fmt.Sprintf("/topup/%d", id), &out)
	return out, err
}

func (c *Client) ApproveTopUp(ctx context.Context, id int64) (string, error) {
	return c.Patch(ctx, fmt.Sprintf("/topup/%d/approve", id), nil, nil)
}

func (c *Client) RejectTopUp(ctx context.Context, id int64) (string, error) {
	return c.Patch(ctx, fmt.Sprintf("/topup/%d/reject", id), nil, nil)
}

func (c *Client) DeleteTopUp(ctx context.Context, id int64) (string, error) {
	return c.Delete(ctx, fmt.Sprintf("/topup/%d", id), nil)
}

/* ===================== BALANCE ===================== */

func (c *Client) GetUserBalance(ctx context.Context, userID int64) (Balance, error) {
	var out Balance
	_, err := c.Get(ctx, fmt.Sprintf("/balance/user/%d", userID), &out)
	return out, err
}

/* ===================== CALL HISTORY ===================== */

func (c *Client) ListCallHistory(ctx context.Context) ([]CallHistory, error) {
	var out []CallHistory
	_, err := c.Get(ctx, "/call-history", &out)
	return out, err
}

func (c *Client) GetCallHistory(ctx context.Context, id int64) (CallHistory, error) {
	var out CallHistory
	_, err := c.Get(ctx, fmt.Sprintf("/call-history/%d", id), &out)
	return out, err
}

func (c *Client) GetCallHistoryByUUID(ctx context.Context, uuid string) (CallHistory, error) {
	var out CallHistory
	_, err := c.Get(ctx, "/call-history/uuid/"+url.PathEscape(uuid), &out)
	return out, err
}

func (c *Client) ListCallHistoryByUser(ctx context.Context, userID int64) ([]CallHistory, error) {
	var out []CallHistory
	_, err := c.Get(ctx, fmt.Sprintf("/call-history/user/%d", userID), &out)
	return out, err
}

func (c *Client) DeleteCallHistory(ctx context.Context, id int64) (string, error) {
	return c.Delete(ctx, fmt.Sprintf("/call-history/%d", id), nil)
}

/* ===================== VOICE CLEANUP ===================== */

func (c *Client) ListExpiredVoices(ctx context.Context) ([]ExpiredVoice, error) {
	var out []ExpiredVoice
	_, err := c.Get(ctx, "/voice-cleanup/history", &out)
	return out, err
}

// CleanupStatistics and RunCleanup return loosely shaped maps; the upstream
// reports ad-hoc counters here and the console displays them as-is.

func (c *Client) CleanupStatistics(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	_, err := c.Get(ctx, "/voice-cleanup/statistics", &out)
	return out, err
}

func (c *Client) PreviewCleanup(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	_, err := c.Get(ctx, "/voice-cleanup/preview", &out)
	return out, err
}

func (c *Client) RunCleanup(ctx context.Context) (map[string]any, string, error) {
	var out map[string]any
	msg, err := c.Post(ctx, "/voice-cleanup/run", nil, &out)
	return out, msg, err
}

/* ===================== DASHBOARD ===================== */

func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	_, err := c.Get(ctx, "/dashboard/stats", &out)
	return out, err
}
