package marketplace

import (
	"context"
	"net/http"
	"net/url"

	"estate-booking/internal/domain/property"
	"estate-booking/internal/domain/user"
)

func (c *Client) GetProfile(ctx context.Context) (*user.Profile, error) {
	resp, err := c.do(ctx, call{
		op:         "get_profile",
		method:     http.MethodGet,
		path:       "/auth/profile",
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}

	var body profileResponse
	if err := decode("get_profile", resp, &body); err != nil {
		return nil, err
	}
	p, err := body.toDomain()
	if err != nil {
		return nil, newClientError(KindDecode, "get_profile", resp.status, "", err)
	}
	return p, nil
}

func (c *Client) GetProperty(ctx context.Context, propertyID string) (*property.Property, error) {
	resp, err := c.do(ctx, call{
		op:         "get_property",
		method:     http.MethodGet,
		path:       "/properties/" + url.PathEscape(propertyID),
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}

	var body propertyResponse
	if err := decode("get_property", resp, &body); err != nil {
		return nil, err
	}
	p, err := body.toDomain()
	if err != nil {
		return nil, newClientError(KindDecode, "get_property", resp.status, "", err)
	}
	return p, nil
}
