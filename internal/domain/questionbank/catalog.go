package questionbank

import "github.com/roadready/backend/internal/domain/category"

// catalog is the built-in driving-test question set.
var catalog = []Question{
	{
		ID:   "rs1",
		Text: "What does a red octagonal sign with white letters reading \"STOP\" mean?",
		Options: []string{
			"Slow down and proceed with caution",
			"Come to a complete stop",
			"Yield to oncoming traffic",
			"Stop only if other vehicles are present",
		},
		CorrectAnswer: 1,
		Explanation:   "A STOP sign requires drivers to come to a complete stop before proceeding, regardless of whether other vehicles are present.",
		Category:      category.RoadSigns,
	},
	{
		ID:   "rs2",
		Text: "What does a triangular sign with a red border and white interior mean?",
		Options: []string{
			"Stop completely",
			"Merge lanes",
			"Yield right of way",
			"No entry",
		},
		CorrectAnswer: 2,
		Explanation:   "A triangular YIELD sign means you must give right of way to other traffic and pedestrians.",
		Category:      category.RoadSigns,
	},
	{
		ID:   "rs3",
		Text: "What does a yellow diamond-shaped sign typically indicate?",
		Options: []string{
			"Regulatory information",
			"Warning of hazard ahead",
			"Directional information",
			"Service information",
		},
		CorrectAnswer: 1,
		Explanation:   "Yellow diamond-shaped signs are warning signs that alert drivers to potential hazards or changes in road conditions ahead.",
		Category:      category.RoadSigns,
	},
	{
		ID:   "tr1",
		Text: "When approaching a four-way stop, who has the right of way?",
		Options: []string{
			"The largest vehicle",
			"The vehicle that arrived first",
			"The vehicle turning right",
			"The vehicle on the right",
		},
		CorrectAnswer: 1,
		Explanation:   "At a four-way stop, the vehicle that arrives first has the right of way. If vehicles arrive simultaneously, the vehicle on the right goes first.",
		Category:      category.TrafficRules,
	},
	{
		ID:   "tr2",
		Text: "What is the general speed limit in residential areas unless otherwise posted?",
		Options: []string{
			"20 mph",
			"25 mph",
			"30 mph",
			"35 mph",
		},
		CorrectAnswer: 1,
		Explanation:   "The typical speed limit in residential areas is 25 mph unless otherwise posted.",
		Category:      category.TrafficRules,
	},
	{
		ID:   "tr3",
		Text: "When is it legal to pass another vehicle on the right?",
		Options: []string{
			"Never",
			"When the vehicle ahead is turning left",
			"Only on highways",
			"When traffic is moving slowly",
		},
		CorrectAnswer: 1,
		Explanation:   "You may pass on the right when the vehicle ahead is making a left turn, on multi-lane roads, or when directed by traffic signs.",
		Category:      category.TrafficRules,
	},
	{
		ID:   "fa1",
		Text: "What is the first thing you should do when arriving at an accident scene?",
		Options: []string{
			"Move injured people to safety",
			"Check for hazards and ensure scene safety",
			"Start CPR immediately",
			"Call for witnesses",
		},
		CorrectAnswer: 1,
		Explanation:   "Scene safety is the top priority. You must assess hazards like fire, unstable vehicles, or traffic before providing aid.",
		Category:      category.FirstAid,
	},
	{
		ID:   "fa2",
		Text: "How should you position an unconscious but breathing accident victim?",
		Options: []string{
			"On their back with head tilted back",
			"Sitting upright against a wall",
			"In the recovery position on their side",
			"Standing up to keep them conscious",
		},
		CorrectAnswer: 2,
		Explanation:   "The recovery position on their side helps keep the airway clear and prevents choking if they vomit.",
		Category:      category.FirstAid,
	},
	{
		ID:   "fa3",
		Text: "What should you do if someone is bleeding heavily from a wound?",
		Options: []string{
			"Apply a tourniquet immediately",
			"Apply direct pressure with a clean cloth",
			"Pour water on the wound to clean it",
			"Give them aspirin for pain",
		},
		CorrectAnswer: 1,
		Explanation:   "Apply direct pressure with a clean cloth or bandage to control bleeding. Elevate the injured area if possible.",
		Category:      category.FirstAid,
	},
	{
		ID:   "sc1",
		Text: "You are driving in heavy rain and your car starts to skid. What should you do?",
		Options: []string{
			"Brake hard immediately",
			"Turn the wheel in the opposite direction",
			"Ease off the gas and steer in the direction you want to go",
			"Accelerate to regain control",
		},
		CorrectAnswer: 2,
		Explanation:   "In a skid, ease off the gas pedal and steer gently in the direction you want the car to go. Avoid sudden movements.",
		Category:      category.Scenarios,
	},
	{
		ID:   "sc2",
		Text: "Your brakes fail while driving downhill. What should you do first?",
		Options: []string{
			"Pull the parking brake hard",
			"Pump the brake pedal rapidly",
			"Shift to a lower gear",
			"Turn off the engine",
		},
		CorrectAnswer: 1,
		Explanation:   "First, pump the brake pedal rapidly to try to build pressure. If that fails, use the parking brake gradually and look for a safe escape route.",
		Category:      category.Scenarios,
	},
	{
		ID:   "sc3",
		Text: "You are approaching an intersection and the traffic light turns yellow. What should you do?",
		Options: []string{
			"Always stop immediately",
			"Speed up to clear the intersection",
			"Stop if you can do so safely, proceed if stopping would be dangerous",
			"Slow down and proceed with caution",
		},
		CorrectAnswer: 2,
		Explanation:   "A yellow light means the signal is about to turn red. Stop if you can do so safely; if stopping would cause an accident, proceed through the intersection.",
		Category:      category.Scenarios,
	},
	{
		ID:   "rs4",
		Text: "What does a circular sign with a red border and white interior typically indicate?",
		Options: []string{
			"Warning of danger ahead",
			"Mandatory instruction",
			"Prohibition or restriction",
			"Information about services",
		},
		CorrectAnswer: 2,
		Explanation:   "Circular signs with red borders indicate prohibitions or restrictions, such as \"No Entry\" or speed limits.",
		Category:      category.RoadSigns,
	},
	{
		ID:   "rs5",
		Text: "What does a blue circular sign typically indicate?",
		Options: []string{
			"Warning",
			"Prohibition",
			"Mandatory instruction",
			"Information",
		},
		CorrectAnswer: 2,
		Explanation:   "Blue circular signs give mandatory instructions that must be followed, such as \"Turn left ahead\" or \"Use this lane\".",
		Category:      category.RoadSigns,
	},
	{
		ID:   "rs6",
		Text: "What does a rectangular sign with white text on blue background indicate?",
		Options: []string{
			"Warning sign",
			"Regulatory sign",
			"Information sign",
			"Construction sign",
		},
		CorrectAnswer: 2,
		Explanation:   "Rectangular signs with white text on blue background provide information about services, facilities, or directions.",
		Category:      category.RoadSigns,
	},
	{
		ID:   "tr4",
		Text: "What is the minimum following distance you should maintain behind another vehicle?",
		Options: []string{
			"1 second",
			"2 seconds",
			"3 seconds",
			"5 seconds",
		},
		CorrectAnswer: 2,
		Explanation:   "The 3-second rule is the minimum safe following distance in normal conditions. Increase this in poor weather or visibility.",
		Category:      category.TrafficRules,
	},
	{
		ID:   "tr5",
		Text: "When must you use your headlights?",
		Options: []string{
			"Only at night",
			"From sunset to sunrise and when visibility is poor",
			"Only when it's raining",
			"Only on highways",
		},
		CorrectAnswer: 1,
		Explanation:   "Headlights must be used from sunset to sunrise and whenever visibility is reduced due to weather, fog, or other conditions.",
		Category:      category.TrafficRules,
	},
	{
		ID:   "tr6",
		Text: "What should you do when approaching a school bus with flashing red lights?",
		Options: []string{
			"Slow down and proceed with caution",
			"Stop at least 20 feet away",
			"Change lanes and pass quickly",
			"Honk your horn to alert the driver",
		},
		CorrectAnswer: 1,
		Explanation:   "When a school bus has flashing red lights, you must stop at least 20 feet away and wait until the lights stop flashing.",
		Category:      category.TrafficRules,
	},
	{
		ID:   "fa4",
		Text: "What is the correct ratio of chest compressions to rescue breaths in CPR for adults?",
		Options: []string{
			"15:2",
			"30:2",
			"5:1",
			"10:1",
		},
		CorrectAnswer: 1,
		Explanation:   "For adult CPR, perform 30 chest compressions followed by 2 rescue breaths, then repeat this cycle.",
		Category:      category.FirstAid,
	},
	{
		ID:   "fa5",
		Text: "How should you treat a burn injury?",
		Options: []string{
			"Apply ice directly to the burn",
			"Use butter or oil on the burn",
			"Cool with running water for 10-20 minutes",
			"Pop any blisters that form",
		},
		CorrectAnswer: 2,
		Explanation:   "Cool burns with running water for 10-20 minutes. Never use ice, butter, or oil, and don't pop blisters.",
		Category:      category.FirstAid,
	},
	{
		ID:   "fa6",
		Text: "What should you do if someone is choking and cannot speak or cough?",
		Options: []string{
			"Give them water to drink",
			"Perform the Heimlich maneuver",
			"Lay them down flat",
			"Wait for them to clear it themselves",
		},
		CorrectAnswer: 1,
		Explanation:   "If someone is choking and cannot speak or cough, perform the Heimlich maneuver (abdominal thrusts) immediately.",
		Category:      category.FirstAid,
	},
	{
		ID:   "sc4",
		Text: "You are driving on a highway and notice a vehicle merging from an on-ramp. What should you do?",
		Options: []string{
			"Speed up to prevent them from merging",
			"Maintain your speed and position",
			"Adjust your speed or change lanes to allow safe merging",
			"Honk your horn to warn them",
		},
		CorrectAnswer: 2,
		Explanation:   "Help merging vehicles by adjusting your speed or changing lanes when safe to do so. Cooperation makes traffic flow smoother and safer.",
		Category:      category.Scenarios,
	},
	{
		ID:   "sc5",
		Text: "What should you do if you encounter a funeral procession?",
		Options: []string{
			"Pass it as quickly as possible",
			"Join the procession if going the same direction",
			"Pull over and wait for it to pass",
			"Drive through the middle of it",
		},
		CorrectAnswer: 2,
		Explanation:   "Show respect by pulling over and allowing the funeral procession to pass. Never break up or drive through a procession.",
		Category:      category.Scenarios,
	},
	{
		ID:   "sc6",
		Text: "You are driving in fog with very limited visibility. What should you do?",
		Options: []string{
			"Use high beam headlights",
			"Follow the car ahead closely for guidance",
			"Use low beam headlights and reduce speed",
			"Turn on hazard lights and maintain normal speed",
		},
		CorrectAnswer: 2,
		Explanation:   "In fog, use low beam headlights (high beams reflect off fog), reduce speed significantly, and increase following distance.",
		Category:      category.Scenarios,
	},
	{
		ID:   "rs7",
		Text: "What does a diamond-shaped orange sign indicate?",
		Options: []string{
			"School zone",
			"Construction or work zone",
			"Hospital zone",
			"Residential area",
		},
		CorrectAnswer: 1,
		Explanation:   "Orange diamond-shaped signs indicate construction or work zones where you should reduce speed and be extra cautious.",
		Category:      category.RoadSigns,
	},
	{
		ID:   "rs8",
		Text: "What does a sign with a bicycle symbol mean?",
		Options: []string{
			"Bicycles prohibited",
			"Bicycle repair shop ahead",
			"Bicycle lane or path",
			"Bicycle crossing",
		},
		CorrectAnswer: 2,
		Explanation:   "Signs with bicycle symbols typically indicate bicycle lanes, paths, or areas where bicycles are expected.",
		Category:      category.RoadSigns,
	},
	{
		ID:   "tr7",
		Text: "When are you required to yield the right of way?",
		Options: []string{
			"Only at yield signs",
			"When entering a highway from a ramp",
			"When turning left across traffic",
			"All of the above",
		},
		CorrectAnswer: 3,
		Explanation:   "You must yield right of way in many situations: at yield signs, when merging, when turning left, and to pedestrians in crosswalks.",
		Category:      category.TrafficRules,
	},
	{
		ID:   "tr8",
		Text: "What is the purpose of anti-lock brakes (ABS)?",
		Options: []string{
			"To stop the car faster",
			"To prevent wheels from locking during hard braking",
			"To reduce brake wear",
			"To make braking quieter",
		},
		CorrectAnswer: 1,
		Explanation:   "ABS prevents wheels from locking up during hard braking, allowing you to maintain steering control while stopping.",
		Category:      category.TrafficRules,
	},
}
