package models

import "strconv"

// FeedColumns is the exact column order of the destination bulk-upload sheet.
// Every row carries the full set; columns without a value stay empty strings.
var FeedColumns = []string{
	"feed_product_type",
	"item_sku",
	"brand_name",
	"item_name",
	"parent_child",
	"parent_sku",
	"relationship_type",
	"variation_theme",
	"standard_price",
	"quantity",
	"main_image_url",
	"other_image_url1",
	"other_image_url2",
	"other_image_url3",
	"department_name",
	"color_name",
	"size_name",
	"material_type",
	"product_description",
	"bullet_point1",
	"bullet_point2",
	"bullet_point3",
	"bullet_point4",
	"bullet_point5",
	"generic_keywords",
	"country_of_origin",
	"manufacturer",
	"update_delete",
	"external_product_id",
	"external_product_id_type",
	"batteries_required",
	"are_batteries_included",
	"supplier_declared_dg_hz_regulation",
}

// ColumnMap flattens a typed row into the destination column mapping. Parent
// rows emit no price, quantity or size; child rows link back via parent_sku.
func (r *OutputRow) ColumnMap() map[string]string {
	m := make(map[string]string, len(FeedColumns))
	for _, col := range FeedColumns {
		m[col] = ""
	}

	m["feed_product_type"] = r.FeedProductType
	m["item_sku"] = r.SKU
	m["brand_name"] = r.Brand
	m["item_name"] = r.Title
	m["product_description"] = r.Description
	m["generic_keywords"] = r.Keywords
	m["department_name"] = r.Department
	m["color_name"] = r.Color
	m["material_type"] = r.Material
	m["country_of_origin"] = r.CountryOfOrigin
	m["manufacturer"] = r.Manufacturer
	m["update_delete"] = "Update"
	m["batteries_required"] = "False"
	m["are_batteries_included"] = "False"
	m["supplier_declared_dg_hz_regulation"] = "Not Applicable"

	m["bullet_point1"] = r.Bullets[0]
	m["bullet_point2"] = r.Bullets[1]
	m["bullet_point3"] = r.Bullets[2]
	m["bullet_point4"] = r.Bullets[3]
	m["bullet_point5"] = r.Bullets[4]

	m["main_image_url"] = r.MainImageURL
	m["other_image_url1"] = r.OtherImageURLs[0]
	m["other_image_url2"] = r.OtherImageURLs[1]
	m["other_image_url3"] = r.OtherImageURLs[2]

	switch r.Relationship {
	case RelationshipParent:
		m["parent_child"] = "Parent"
		m["variation_theme"] = r.VariationTheme
	case RelationshipChild:
		m["parent_child"] = "Child"
		m["parent_sku"] = r.ParentSKU
		m["relationship_type"] = "Variation"
		m["variation_theme"] = r.VariationTheme
		m["size_name"] = r.Size
		m["standard_price"] = strconv.Itoa(r.Price)
		m["quantity"] = strconv.Itoa(r.Quantity)
	default:
		m["size_name"] = r.Size
		m["standard_price"] = strconv.Itoa(r.Price)
		m["quantity"] = strconv.Itoa(r.Quantity)
	}

	return m
}

// Values returns the row's cells in FeedColumns order, ready for a sink
func (r *OutputRow) Values() []string {
	m := r.ColumnMap()
	out := make([]string, len(FeedColumns))
	for i, col := range FeedColumns {
		out[i] = m[col]
	}
	return out
}
