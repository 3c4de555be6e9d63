package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/logger"
	"github.com/findit-app/findit-backend/src/middleware"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/findit-app/findit-backend/src/storage"
	"github.com/findit-app/findit-backend/src/store"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItemController struct {
	Items ItemRepository
	// Photos is nil when no bucket is configured; uploaded photos are then dropped.
	Photos storage.PhotoStore
}

// ReportLost stores a lost item report, with an optional "photo" file
func (i *ItemController) ReportLost(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}

	var body struct {
		Category    string `json:"category" form:"category"`
		Description string `json:"description" form:"description"`
		Contact     string `json:"contact" form:"contact"`
		Location    string `json:"location" form:"location"`
		Date        string `json:"date" form:"date"`
		Time        string `json:"time" form:"time"`
	}
	if err := c.BodyParser(&body); err != nil {
		return lib.BadRequest("Invalid request body")
	}

	category, ok := models.ParseCategory(body.Category)
	if !ok {
		return lib.BadRequest("category must be one of " + categoryList())
	}

	item := models.LostItem{
		Category:    category,
		Description: strings.TrimSpace(body.Description),
		Contact:     body.Contact,
		Location:    body.Location,
		ReportedBy:  user.Id,
	}
	var err error
	if item.Date, err = parseTimestamp(body.Date); err != nil {
		return lib.BadRequest("date must be an ISO 8601 timestamp")
	}
	if item.Time, err = parseTimestamp(body.Time); err != nil {
		return lib.BadRequest("time must be an ISO 8601 timestamp")
	}
	if item.Photo, err = i.savePhoto(c, "lost"); err != nil {
		return err
	}

	if err := i.Items.InsertLost(c.Context(), &item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Lost item reported successfully",
		"item":    item,
	})
}

// ReportFound stores a found item report, with an optional "photo" file
func (i *ItemController) ReportFound(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}

	var body struct {
		ItemName    string `json:"itemName" form:"itemName"`
		Time        string `json:"time" form:"time"`
		Contact     string `json:"contact" form:"contact"`
		Location    string `json:"location" form:"location"`
		Date        string `json:"date" form:"date"`
		Description string `json:"description" form:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return lib.BadRequest("Invalid request body")
	}

	item := models.FoundItem{
		ItemName:    body.ItemName,
		Time:        body.Time,
		Contact:     body.Contact,
		Location:    body.Location,
		Date:        body.Date,
		Description: strings.TrimSpace(body.Description),
		ReportedBy:  user.Id,
	}
	var err error
	if item.Photo, err = i.savePhoto(c, "found"); err != nil {
		return err
	}

	if err := i.Items.InsertFound(c.Context(), &item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Found item reported successfully",
		"item":    item,
	})
}

func (i *ItemController) GetLost(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return lib.BadRequest("Invalid item ID format")
	}
	item, err := i.Items.FindLost(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return lib.NotFound("Item not found")
		}
		return lib.Internal(err)
	}
	return c.JSON(item)
}

func (i *ItemController) GetFound(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return lib.BadRequest("Invalid item ID format")
	}
	item, err := i.Items.FindFound(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return lib.NotFound("Item not found")
		}
		return lib.Internal(err)
	}
	return c.JSON(item)
}

// GetMyItems lists the reports filed by the caller
func (i *ItemController) GetMyItems(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}
	lost, found, err := i.Items.ReportedBy(c.Context(), user.Id)
	if err != nil {
		return lib.Internal(err)
	}
	if lost == nil {
		lost = []models.LostItem{}
	}
	if found == nil {
		found = []models.FoundItem{}
	}
	return c.JSON(fiber.Map{"lost": lost, "found": found})
}

// savePhoto uploads the "photo" form file, if any, and returns its object key.
// Requests without a multipart body or without the field carry no photo.
func (i *ItemController) savePhoto(c *fiber.Ctx, kind string) (string, error) {
	file, err := c.FormFile("photo")
	if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
		return "", nil
	}
	if err != nil {
		return "", lib.BadRequest("Invalid photo upload")
	}
	if i.Photos == nil {
		logger.Warn().Str("kind", kind).Str("filename", file.Filename).Msg("Photo store not configured, dropping upload")
		return "", nil
	}

	f, err := file.Open()
	if err != nil {
		return "", lib.Internal(err)
	}
	defer f.Close()

	key, err := i.Photos.Put(c.Context(), kind, file.Filename, file.Header.Get(fiber.HeaderContentType), f, file.Size)
	if err != nil {
		return "", lib.Internal(err)
	}
	return key, nil
}

func categoryList() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
