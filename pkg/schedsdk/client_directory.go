package schedsdk

import (
	"context"
	"net/http"
)

func (c *Client) ListRooms(ctx context.Context) ([]RoomResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/rooms", nil, nil)
	if err != nil {
		return nil, err
	}

	var out RoomListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Rooms, nil
}

func (c *Client) ListPeople(ctx context.Context) ([]PersonResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/people", nil, nil)
	if err != nil {
		return nil, err
	}

	var out PersonListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.People, nil
}

// SetDeliveryToken registers the caller's push token. Pass "" to clear it.
func (c *Client) SetDeliveryToken(ctx context.Context, token string) error {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/people/me/delivery-token", DeliveryTokenRequest{Token: token}, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
