package storefront

// Page sizes match the Storefront API connection limits: 250 products per
// page, 100 variants per product.
const productPageSize = 250

const productFields = `
fragment productFields on Product {
	id
	handle
	title
	onlineStoreUrl
	featuredImage {
		url
		altText
	}
	priceRange {
		minVariantPrice { amount currencyCode }
		maxVariantPrice { amount currencyCode }
	}
	variants(first: 100) {
		edges {
			node {
				id
				title
				price { amount currencyCode }
				compareAtPrice { amount currencyCode }
			}
		}
	}
}`

const collectionQuery = `
query CollectionDeals($handle: String!, $first: Int!, $cursor: String) {
	collection(handle: $handle) {
		products(first: $first, after: $cursor) {
			pageInfo { hasNextPage endCursor }
			edges { node { ...productFields } }
		}
	}
}` + productFields

const searchQuery = `
query SearchDeals($query: String!, $first: Int!, $cursor: String) {
	products(first: $first, after: $cursor, query: $query) {
		pageInfo { hasNextPage endCursor }
		edges { node { ...productFields } }
	}
}` + productFields
