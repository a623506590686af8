package serverutils

import (
	"strings"
	"testing"

	"smartbyte-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequestRejectsEmptyMessage(t *testing.T) {
	err := ValidateRequest(&dto.SendMessageRequest{SessionKey: "sess-1"})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "required")
}

func TestValidateRequestRejectsOversizedMessage(t *testing.T) {
	err := ValidateRequest(&dto.SendMessageRequest{
		SessionKey: "sess-1",
		Message:    strings.Repeat("א", 2001),
	})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "max")
}

func TestValidateRequestAcceptsMessageAtLimit(t *testing.T) {
	err := ValidateRequest(&dto.SendMessageRequest{
		SessionKey: "sess-1",
		Message:    strings.Repeat("א", 2000),
	})
	assert.NoError(t, err)
}
