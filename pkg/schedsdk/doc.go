/*
Package schedsdk is the client SDK and wire types for the huddle scheduler
service.

The HTTP handlers encode these types and the Client decodes them, so both
sides share one definition of the API:

	client := schedsdk.NewClient("https://huddle.example.com", accessToken)

	draft, err := client.GetDraft(ctx)
	draft.Title = "House meeting"
	draft.RoomID = rooms[0].ID

	event, err := client.SubmitEvent(ctx, draft.EventDraftRequest, "")
	if apiErr, ok := schedsdk.AsAPIError(err); ok && apiErr.Code == schedsdk.ErrorCodeValidationFailed {
		// apiErr.Messages holds the form errors, in display order
	}

Times travel as wall-clock strings in the service's configured timezone:
dates as "2006-01-02" and clock times as "15:04".
*/
package schedsdk
