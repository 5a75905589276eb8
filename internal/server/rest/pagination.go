package rest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/yong/moviehub/internal/storage"
)

const (
	HeaderTotalCount = "X-Total-Count"
	HeaderLink       = "Link"
)

// ParsePageable reads the page, size and sort query parameters. Sort may be
// repeated; each value is "property[,property...][,asc|desc]".
func ParsePageable(c *fiber.Ctx, cfg Config) (storage.Pageable, error) {
	pageable := storage.Pageable{
		Page: 0,
		Size: cfg.DefaultPageSize,
		Sort: nil,
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return pageable, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid page %q", raw))
		}
		pageable.Page = page
	}

	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return pageable, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid size %q", raw))
		}
		if size > 0 {
			pageable.Size = min(size, cfg.MaxPageSize)
		}
	}

	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		orders, err := parseSort(string(raw))
		if err != nil {
			return pageable, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		pageable.Sort = append(pageable.Sort, orders...)
	}

	return pageable, nil
}

func parseSort(raw string) ([]storage.Order, error) {
	parts := lo.Compact(lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))

	direction := storage.Asc
	if len(parts) > 1 {
		switch last := storage.Direction(strings.ToLower(parts[len(parts)-1])); last {
		case storage.Asc, storage.Desc:
			direction = last
			parts = parts[:len(parts)-1]
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("invalid sort %q", raw)
	}

	return lo.Map(parts, func(property string, _ int) storage.Order {
		return storage.Order{Property: property, Direction: direction}
	}), nil
}

// WritePage sets X-Total-Count and an RFC 5988 Link header with the next,
// prev, last and first pages of the current request.
func WritePage(c *fiber.Ctx, pageable storage.Pageable, total int) error {
	c.Set(HeaderTotalCount, strconv.Itoa(total))

	if pageable.Size <= 0 {
		return nil
	}

	u, err := url.Parse(c.OriginalURL())
	if err != nil {
		return fmt.Errorf("failed to parse request url: %w", err)
	}

	totalPages := (total + pageable.Size - 1) / pageable.Size
	lastPage := max(totalPages-1, 0)

	link := func(page int, rel string) string {
		query := u.Query()
		query.Set("page", strconv.Itoa(page))
		query.Set("size", strconv.Itoa(pageable.Size))

		target := *u
		target.RawQuery = query.Encode()
		return fmt.Sprintf("<%s%s>; rel=%q", c.BaseURL(), target.String(), rel)
	}

	links := []string{}
	if pageable.Page < lastPage {
		links = append(links, link(pageable.Page+1, "next"))
	}
	if pageable.Page > 0 {
		links = append(links, link(pageable.Page-1, "prev"))
	}
	links = append(links, link(lastPage, "last"), link(0, "first"))

	c.Set(HeaderLink, strings.Join(links, ","))

	return nil
}
