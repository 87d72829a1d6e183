package handlers

import (
	"Recipe-API/domain"
	"Recipe-API/pkg/tag"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TagHandler interface {
		GetTags(c *fiber.Ctx) error
		CreateTag(c *fiber.Ctx) error
	}

	tagHandler struct {
		list   fiber.Handler
		create fiber.Handler
	}
)

func NewTagHandler(tagService tag.TagService, validator *validator.Validate) TagHandler {
	return &tagHandler{
		list: listAttributes[domain.TagResponse](tagService, messages{
			success: domain.MessageSuccessGetTags,
			failed:  domain.MessageFailedGetTags,
		}),
		create: create[domain.TagRequest, domain.TagResponse](tagService, validator, messages{
			success: domain.MessageSuccessCreateTag,
			failed:  domain.MessageFailedCreateTag,
		}),
	}
}

func (h *tagHandler) GetTags(c *fiber.Ctx) error {
	return h.list(c)
}

func (h *tagHandler) CreateTag(c *fiber.Ctx) error {
	return h.create(c)
}
