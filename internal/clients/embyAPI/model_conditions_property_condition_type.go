/*
 * Emby Server REST API
 *
 * Explore the Emby Server API
 *
 */
package embyclient

type ConditionsPropertyConditionType string

// List of Conditions.PropertyConditionType
const (
	VISIBLE_ConditionsPropertyConditionType ConditionsPropertyConditionType = "Visible"
	ENABLED_ConditionsPropertyConditionType ConditionsPropertyConditionType = "Enabled"
)
