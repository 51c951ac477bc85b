package rent591

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rent591-scraper/models"
	"rent591-scraper/utils"
)

// houseIDPattern matches a listing link and captures its numeric ID.
var houseIDPattern = regexp.MustCompile(`https://rent\.591\.com\.tw/(\d+)`)

// houseRulesLabel is the heading of the section that carries the gender rule.
const houseRulesLabel = "房屋守則"

// ExtractHouseIDs scans every hyperlink in the document and collects the
// unique listing IDs. Malformed or empty input yields an empty set.
func ExtractHouseIDs(html string) *utils.IDSet {
	ids := utils.NewIDSet()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ids
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		if m := houseIDPattern.FindStringSubmatch(href); m != nil {
			ids.Add(m[1])
		}
	})

	return ids
}

// ParseHouseDetail extracts a listing record from one detail page. Every
// field is extracted independently: a missing or malformed element leaves
// that one field at its default without touching the others.
func ParseHouseDetail(houseID, html string) *models.House {
	house := models.NewEmptyHouse(houseID)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return house
	}

	house.Title = elementText(doc, "title")
	house.Price = elementText(doc, ".house-price")
	house.ContactIdentity, house.ContactName = extractContact(doc)
	house.ContactPhone = elementText(doc, ".phone span span")
	house.HouseType, house.CurrentStatus = extractPattern(doc)
	house.GenderRestriction = extractGenderRestriction(doc)
	house.Description = elementText(doc, ".house-condition-content")

	return house
}

// elementText returns the trimmed text of the first element matching the
// selector, or "" when there is none.
func elementText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

// extractContact splits the combined name element on its first colon:
// the left part is the contact's identity, the right part the name.
func extractContact(doc *goquery.Document) (identity, name string) {
	raw := elementText(doc, ".contact-info .name")
	if raw == "" {
		return "", ""
	}

	parts := strings.SplitN(raw, ":", 2)
	identity = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		name = strings.TrimSpace(parts[1])
	}
	return identity, name
}

// extractPattern reads the non-empty span fragments of the pattern container
// in document order: the first is the house type, the second the current
// status. Fewer fragments leave the missing field empty.
func extractPattern(doc *goquery.Document) (houseType, currentStatus string) {
	var fragments []string
	doc.Find("div.pattern span").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			fragments = append(fragments, text)
		}
	})

	if len(fragments) > 0 {
		houseType = fragments[0]
	}
	if len(fragments) > 1 {
		currentStatus = fragments[1]
	}
	return houseType, currentStatus
}

// extractGenderRestriction locates the house-rules label and keyword-matches
// the adjacent rule text. Pages without the section keep the default.
func extractGenderRestriction(doc *goquery.Document) string {
	restriction := models.GenderUnrestricted

	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.Text()) != houseRulesLabel {
			return true
		}

		ruleText := strings.TrimSpace(sel.NextAllFiltered("span").First().Text())
		switch {
		case strings.Contains(ruleText, "限女"):
			restriction = models.GenderFemaleOnly
		case strings.Contains(ruleText, "限男"):
			restriction = models.GenderMaleOnly
		}
		return false
	})

	return restriction
}
