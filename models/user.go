package models

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "SEDENTARY"   // little or no exercise
	ActivityLight      ActivityLevel = "LIGHT"       // light exercise 1-3 days/week
	ActivityModerate   ActivityLevel = "MODERATE"    // moderate exercise 3-5 days/week
	ActivityActive     ActivityLevel = "ACTIVE"      // hard exercise 6-7 days/week
	ActivityVeryActive ActivityLevel = "VERY_ACTIVE" // very hard exercise & physical job
)

type Goal string

const (
	GoalLose     Goal = "LOSE"
	GoalMaintain Goal = "MAINTAIN"
	GoalGain     Goal = "GAIN"
)

// UserStats holds the body statistics the daily calorie target is derived
// from. One record per installation; replaced wholesale on every save.
type UserStats struct {
	Name          string        `json:"name" binding:"required"`
	Age           int           `json:"age" binding:"required,gt=0"`
	Gender        Gender        `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Height        float64       `json:"height" binding:"required,gt=0"` // cm
	Weight        float64       `json:"weight" binding:"required,gt=0"` // kg
	ActivityLevel ActivityLevel `json:"activityLevel" binding:"required,oneof=SEDENTARY LIGHT MODERATE ACTIVE VERY_ACTIVE"`
	Goal          Goal          `json:"goal" binding:"required,oneof=LOSE MAINTAIN GAIN"`
}
