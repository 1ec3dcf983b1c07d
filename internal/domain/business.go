package domain

import "time"

// Business is one row of the businesses table, projected 1:1. Every stored
// column appears here under its original name; nothing is dropped or
// renamed on the way out. Nullable columns use pointer fields so NULL and
// empty string stay distinguishable in responses.
type Business struct {
	ID                        int64      `json:"id" db:"id"`
	Query                     *string    `json:"query" db:"query"`
	Name                      *string    `json:"name" db:"name"`
	NameForEmails             *string    `json:"name_for_emails" db:"name_for_emails"`
	Site                      *string    `json:"site" db:"site"`
	Subtypes                  *string    `json:"subtypes" db:"subtypes"`
	Category                  *string    `json:"category" db:"category"`
	Type                      *string    `json:"type" db:"type"`
	Phone                     *string    `json:"phone" db:"phone"`
	Phone1                    *string    `json:"phone_1" db:"phone_1"`
	Phone2                    *string    `json:"phone_2" db:"phone_2"`
	Phone3                    *string    `json:"phone_3" db:"phone_3"`
	FullAddress               *string    `json:"full_address" db:"full_address"`
	Borough                   *string    `json:"borough" db:"borough"`
	Street                    *string    `json:"street" db:"street"`
	City                      *string    `json:"city" db:"city"`
	PostalCode                *string    `json:"postal_code" db:"postal_code"`
	State                     *string    `json:"state" db:"state"`
	USState                   *string    `json:"us_state" db:"us_state"`
	Country                   *string    `json:"country" db:"country"`
	CountryCode               *string    `json:"country_code" db:"country_code"`
	Latitude                  *float64   `json:"latitude" db:"latitude"`
	Longitude                 *float64   `json:"longitude" db:"longitude"`
	H3                        *string    `json:"h3" db:"h3"`
	TimeZone                  *string    `json:"time_zone" db:"time_zone"`
	PlusCode                  *string    `json:"plus_code" db:"plus_code"`
	AreaService               *bool      `json:"area_service" db:"area_service"`
	Rating                    *float64   `json:"rating" db:"rating"`
	Reviews                   *int64     `json:"reviews" db:"reviews"`
	ReviewsLink               *string    `json:"reviews_link" db:"reviews_link"`
	ReviewsTags               *string    `json:"reviews_tags" db:"reviews_tags"`
	ReviewsPerScore           *string    `json:"reviews_per_score" db:"reviews_per_score"`
	ReviewsPerScore1          *int64     `json:"reviews_per_score_1" db:"reviews_per_score_1"`
	ReviewsPerScore2          *int64     `json:"reviews_per_score_2" db:"reviews_per_score_2"`
	ReviewsPerScore3          *int64     `json:"reviews_per_score_3" db:"reviews_per_score_3"`
	ReviewsPerScore4          *int64     `json:"reviews_per_score_4" db:"reviews_per_score_4"`
	ReviewsPerScore5          *int64     `json:"reviews_per_score_5" db:"reviews_per_score_5"`
	ReviewsID                 *string    `json:"reviews_id" db:"reviews_id"`
	PhotosCount               *int64     `json:"photos_count" db:"photos_count"`
	Photo                     *string    `json:"photo" db:"photo"`
	StreetView                *string    `json:"street_view" db:"street_view"`
	Logo                      *string    `json:"logo" db:"logo"`
	LocatedIn                 *string    `json:"located_in" db:"located_in"`
	WorkingHours              *string    `json:"working_hours" db:"working_hours"`
	WorkingHoursCSVCompatible *string    `json:"working_hours_csv_compatible" db:"working_hours_csv_compatible"`
	WorkingHoursOldFormat     *string    `json:"working_hours_old_format" db:"working_hours_old_format"`
	OtherHours                *string    `json:"other_hours" db:"other_hours"`
	PopularTimes              *string    `json:"popular_times" db:"popular_times"`
	BusinessStatus            *string    `json:"business_status" db:"business_status"`
	About                     *string    `json:"about" db:"about"`
	Range                     *string    `json:"range" db:"range"`
	Prices                    *string    `json:"prices" db:"prices"`
	Posts                     *string    `json:"posts" db:"posts"`
	Description               *string    `json:"description" db:"description"`
	TypicalTimeSpent          *string    `json:"typical_time_spent" db:"typical_time_spent"`
	Verified                  *bool      `json:"verified" db:"verified"`
	OwnerID                   *string    `json:"owner_id" db:"owner_id"`
	OwnerTitle                *string    `json:"owner_title" db:"owner_title"`
	OwnerLink                 *string    `json:"owner_link" db:"owner_link"`
	ReservationLinks          *string    `json:"reservation_links" db:"reservation_links"`
	BookingAppointmentLink    *string    `json:"booking_appointment_link" db:"booking_appointment_link"`
	MenuLink                  *string    `json:"menu_link" db:"menu_link"`
	OrderLinks                *string    `json:"order_links" db:"order_links"`
	LocationLink              *string    `json:"location_link" db:"location_link"`
	LocationReviewsLink       *string    `json:"location_reviews_link" db:"location_reviews_link"`
	PlaceID                   *string    `json:"place_id" db:"place_id"`
	GoogleID                  *string    `json:"google_id" db:"google_id"`
	CID                       *string    `json:"cid" db:"cid"`
	KGMID                     *string    `json:"kgmid" db:"kgmid"`
	LocatedGoogleID           *string    `json:"located_google_id" db:"located_google_id"`
	Email1                    *string    `json:"email_1" db:"email_1"`
	Email1FullName            *string    `json:"email_1_full_name" db:"email_1_full_name"`
	Email1FirstName           *string    `json:"email_1_first_name" db:"email_1_first_name"`
	Email1LastName            *string    `json:"email_1_last_name" db:"email_1_last_name"`
	Email1Title               *string    `json:"email_1_title" db:"email_1_title"`
	Email1Phone               *string    `json:"email_1_phone" db:"email_1_phone"`
	Email2                    *string    `json:"email_2" db:"email_2"`
	Email2FullName            *string    `json:"email_2_full_name" db:"email_2_full_name"`
	Email2FirstName           *string    `json:"email_2_first_name" db:"email_2_first_name"`
	Email2LastName            *string    `json:"email_2_last_name" db:"email_2_last_name"`
	Email2Title               *string    `json:"email_2_title" db:"email_2_title"`
	Email2Phone               *string    `json:"email_2_phone" db:"email_2_phone"`
	Email3                    *string    `json:"email_3" db:"email_3"`
	Email3FullName            *string    `json:"email_3_full_name" db:"email_3_full_name"`
	Email3FirstName           *string    `json:"email_3_first_name" db:"email_3_first_name"`
	Email3LastName            *string    `json:"email_3_last_name" db:"email_3_last_name"`
	Email3Title               *string    `json:"email_3_title" db:"email_3_title"`
	Email3Phone               *string    `json:"email_3_phone" db:"email_3_phone"`
	Facebook                  *string    `json:"facebook" db:"facebook"`
	Instagram                 *string    `json:"instagram" db:"instagram"`
	LinkedIn                  *string    `json:"linkedin" db:"linkedin"`
	TikTok                    *string    `json:"tiktok" db:"tiktok"`
	Medium                    *string    `json:"medium" db:"medium"`
	Reddit                    *string    `json:"reddit" db:"reddit"`
	Skype                     *string    `json:"skype" db:"skype"`
	Snapchat                  *string    `json:"snapchat" db:"snapchat"`
	Telegram                  *string    `json:"telegram" db:"telegram"`
	WhatsApp                  *string    `json:"whatsapp" db:"whatsapp"`
	Twitter                   *string    `json:"twitter" db:"twitter"`
	Vimeo                     *string    `json:"vimeo" db:"vimeo"`
	YouTube                   *string    `json:"youtube" db:"youtube"`
	GitHub                    *string    `json:"github" db:"github"`
	Crunchbase                *string    `json:"crunchbase" db:"crunchbase"`
	WebsiteTitle              *string    `json:"website_title" db:"website_title"`
	WebsiteGenerator          *string    `json:"website_generator" db:"website_generator"`
	WebsiteDescription        *string    `json:"website_description" db:"website_description"`
	WebsiteKeywords           *string    `json:"website_keywords" db:"website_keywords"`
	WebsiteHasFBPixel         *bool      `json:"website_has_fb_pixel" db:"website_has_fb_pixel"`
	WebsiteHasGoogleTag       *bool      `json:"website_has_google_tag" db:"website_has_google_tag"`
	SourceFile                *string    `json:"source_file" db:"source_file"`
	ImportDate                *time.Time `json:"import_date" db:"import_date"`
}

// businessColumns lists every stored column in the order ScanDest produces
// its destinations. The two must stay in sync; the repository builds both
// its select list and its row scanning from this pair.
var businessColumns = []string{
	"id", "query", "name", "name_for_emails", "site", "subtypes", "category",
	"type", "phone", "phone_1", "phone_2", "phone_3", "full_address",
	"borough", "street", "city", "postal_code", "state", "us_state",
	"country", "country_code", "latitude", "longitude", "h3", "time_zone",
	"plus_code", "area_service", "rating", "reviews", "reviews_link",
	"reviews_tags", "reviews_per_score", "reviews_per_score_1",
	"reviews_per_score_2", "reviews_per_score_3", "reviews_per_score_4",
	"reviews_per_score_5", "reviews_id", "photos_count", "photo",
	"street_view", "logo", "located_in", "working_hours",
	"working_hours_csv_compatible", "working_hours_old_format", "other_hours",
	"popular_times", "business_status", "about", "range", "prices", "posts",
	"description", "typical_time_spent", "verified", "owner_id",
	"owner_title", "owner_link", "reservation_links",
	"booking_appointment_link", "menu_link", "order_links", "location_link",
	"location_reviews_link", "place_id", "google_id", "cid", "kgmid",
	"located_google_id", "email_1", "email_1_full_name",
	"email_1_first_name", "email_1_last_name", "email_1_title",
	"email_1_phone", "email_2", "email_2_full_name", "email_2_first_name",
	"email_2_last_name", "email_2_title", "email_2_phone", "email_3",
	"email_3_full_name", "email_3_first_name", "email_3_last_name",
	"email_3_title", "email_3_phone", "facebook", "instagram", "linkedin",
	"tiktok", "medium", "reddit", "skype", "snapchat", "telegram",
	"whatsapp", "twitter", "vimeo", "youtube", "github", "crunchbase",
	"website_title", "website_generator", "website_description",
	"website_keywords", "website_has_fb_pixel", "website_has_google_tag",
	"source_file", "import_date",
}

// Columns returns the full stored column list in scan order. The returned
// slice is shared; treat it as read-only.
func Columns() []string {
	return businessColumns
}

// ScanDest returns scan destinations for one row, in Columns order.
func (b *Business) ScanDest() []interface{} {
	return []interface{}{
		&b.ID, &b.Query, &b.Name, &b.NameForEmails, &b.Site, &b.Subtypes,
		&b.Category, &b.Type, &b.Phone, &b.Phone1, &b.Phone2, &b.Phone3,
		&b.FullAddress, &b.Borough, &b.Street, &b.City, &b.PostalCode,
		&b.State, &b.USState, &b.Country, &b.CountryCode, &b.Latitude,
		&b.Longitude, &b.H3, &b.TimeZone, &b.PlusCode, &b.AreaService,
		&b.Rating, &b.Reviews, &b.ReviewsLink, &b.ReviewsTags,
		&b.ReviewsPerScore, &b.ReviewsPerScore1, &b.ReviewsPerScore2,
		&b.ReviewsPerScore3, &b.ReviewsPerScore4, &b.ReviewsPerScore5,
		&b.ReviewsID, &b.PhotosCount, &b.Photo, &b.StreetView, &b.Logo,
		&b.LocatedIn, &b.WorkingHours, &b.WorkingHoursCSVCompatible,
		&b.WorkingHoursOldFormat, &b.OtherHours, &b.PopularTimes,
		&b.BusinessStatus, &b.About, &b.Range, &b.Prices, &b.Posts,
		&b.Description, &b.TypicalTimeSpent, &b.Verified, &b.OwnerID,
		&b.OwnerTitle, &b.OwnerLink, &b.ReservationLinks,
		&b.BookingAppointmentLink, &b.MenuLink, &b.OrderLinks,
		&b.LocationLink, &b.LocationReviewsLink, &b.PlaceID, &b.GoogleID,
		&b.CID, &b.KGMID, &b.LocatedGoogleID, &b.Email1, &b.Email1FullName,
		&b.Email1FirstName, &b.Email1LastName, &b.Email1Title,
		&b.Email1Phone, &b.Email2, &b.Email2FullName, &b.Email2FirstName,
		&b.Email2LastName, &b.Email2Title, &b.Email2Phone, &b.Email3,
		&b.Email3FullName, &b.Email3FirstName, &b.Email3LastName,
		&b.Email3Title, &b.Email3Phone, &b.Facebook, &b.Instagram,
		&b.LinkedIn, &b.TikTok, &b.Medium, &b.Reddit, &b.Skype,
		&b.Snapchat, &b.Telegram, &b.WhatsApp, &b.Twitter, &b.Vimeo,
		&b.YouTube, &b.GitHub, &b.Crunchbase, &b.WebsiteTitle,
		&b.WebsiteGenerator, &b.WebsiteDescription, &b.WebsiteKeywords,
		&b.WebsiteHasFBPixel, &b.WebsiteHasGoogleTag, &b.SourceFile,
		&b.ImportDate,
	}
}
