package generator

import "github.com/Mrvatsan/APTITUDE-AI/internal/models"

// fallbackBank holds pre-authored questions per topic, served whenever the
// upstream generator is unavailable. Pure data.
var fallbackBank = map[string][]models.Question{
	"Number System": {
		{Text: "What is the sum of the first 10 natural numbers?", Options: []string{"45", "50", "55", "60"}, CorrectOptionIndex: 2, Solution: "Sum = n(n+1)/2 = 10×11/2 = 55", Difficulty: "easy", Category: "Number System"},
		{Text: "Find the unit digit of 7^25.", Options: []string{"1", "3", "7", "9"}, CorrectOptionIndex: 2, Solution: "Unit digits of powers of 7 cycle: 7,9,3,1. 25 mod 4 = 1, so unit digit is 7.", Difficulty: "medium", Category: "Number System"},
		{Text: "How many prime numbers are between 1 and 20?", Options: []string{"6", "7", "8", "9"}, CorrectOptionIndex: 2, Solution: "Primes: 2,3,5,7,11,13,17,19 = 8 primes", Difficulty: "easy", Category: "Number System"},
		{Text: "What is the remainder when 17^23 is divided by 16?", Options: []string{"0", "1", "15", "17"}, CorrectOptionIndex: 1, Solution: "17 = 16+1, so 17^23 mod 16 = 1^23 = 1", Difficulty: "medium", Category: "Number System"},
		{Text: "Find the LCM of 12 and 18.", Options: []string{"24", "36", "72", "108"}, CorrectOptionIndex: 1, Solution: "LCM(12,18) = 36", Difficulty: "easy", Category: "Number System"},
		{Text: "The product of two numbers is 120 and their HCF is 6. Find their LCM.", Options: []string{"15", "20", "30", "720"}, CorrectOptionIndex: 1, Solution: "HCF × LCM = Product. LCM = 120/6 = 20", Difficulty: "medium", Category: "Number System"},
		{Text: "What is 25% of 80?", Options: []string{"15", "20", "25", "30"}, CorrectOptionIndex: 1, Solution: "25% of 80 = 0.25 × 80 = 20", Difficulty: "easy", Category: "Number System"},
		{Text: "Find the smallest 4-digit number divisible by 12.", Options: []string{"1000", "1008", "1012", "1020"}, CorrectOptionIndex: 1, Solution: "1000 ÷ 12 = 83.33. Next: 84 × 12 = 1008", Difficulty: "medium", Category: "Number System"},
		{Text: "What is the square root of 144?", Options: []string{"10", "11", "12", "13"}, CorrectOptionIndex: 2, Solution: "√144 = 12", Difficulty: "easy", Category: "Number System"},
		{Text: "If a number is divisible by both 3 and 5, it must be divisible by:", Options: []string{"8", "10", "15", "30"}, CorrectOptionIndex: 2, Solution: "LCM of 3 and 5 is 15", Difficulty: "easy", Category: "Number System"},
		{Text: "Find the value of 2^8.", Options: []string{"128", "256", "512", "1024"}, CorrectOptionIndex: 1, Solution: "2^8 = 256", Difficulty: "easy", Category: "Number System"},
		{Text: "How many factors does 36 have?", Options: []string{"6", "7", "8", "9"}, CorrectOptionIndex: 3, Solution: "36 = 2² × 3². Factors = (2+1)(2+1) = 9", Difficulty: "medium", Category: "Number System"},
	},
	"HCF and LCM": {
		{Text: "Find the HCF of 48 and 60.", Options: []string{"6", "12", "24", "4"}, CorrectOptionIndex: 1, Solution: "HCF(48,60) = 12", Difficulty: "easy", Category: "HCF and LCM"},
		{Text: "Find the LCM of 15 and 20.", Options: []string{"60", "100", "120", "300"}, CorrectOptionIndex: 0, Solution: "LCM(15,20) = 60", Difficulty: "easy", Category: "HCF and LCM"},
		{Text: "The HCF of two numbers is 8 and their product is 384. Find their LCM.", Options: []string{"24", "32", "48", "64"}, CorrectOptionIndex: 2, Solution: "HCF × LCM = Product. LCM = 384/8 = 48", Difficulty: "medium", Category: "HCF and LCM"},
		{Text: "Find the HCF of 18, 24 and 36.", Options: []string{"2", "3", "6", "12"}, CorrectOptionIndex: 2, Solution: "HCF(18,24,36) = 6", Difficulty: "easy", Category: "HCF and LCM"},
		{Text: "Find the LCM of 4, 6 and 8.", Options: []string{"12", "24", "48", "96"}, CorrectOptionIndex: 1, Solution: "LCM(4,6,8) = 24", Difficulty: "easy", Category: "HCF and LCM"},
		{Text: "Two numbers are in ratio 3:4 with HCF 5. Find the numbers.", Options: []string{"15 and 20", "9 and 12", "6 and 8", "12 and 16"}, CorrectOptionIndex: 0, Solution: "Numbers = 3×5=15 and 4×5=20", Difficulty: "medium", Category: "HCF and LCM"},
		{Text: "Find the greatest number that divides 42, 63 and 84.", Options: []string{"7", "14", "21", "42"}, CorrectOptionIndex: 2, Solution: "HCF(42,63,84) = 21", Difficulty: "medium", Category: "HCF and LCM"},
		{Text: "The LCM of two numbers is 120 and their HCF is 10. If one number is 40, find the other.", Options: []string{"20", "30", "40", "60"}, CorrectOptionIndex: 1, Solution: "Other = (LCM × HCF)/40 = (120×10)/40 = 30", Difficulty: "medium", Category: "HCF and LCM"},
		{Text: "Find the smallest number divisible by both 12 and 18.", Options: []string{"24", "36", "72", "108"}, CorrectOptionIndex: 1, Solution: "LCM(12,18) = 36", Difficulty: "easy", Category: "HCF and LCM"},
		{Text: "Three bells ring at intervals of 4, 6 and 8 seconds. After how many seconds will they ring together?", Options: []string{"12", "24", "48", "96"}, CorrectOptionIndex: 1, Solution: "LCM(4,6,8) = 24 seconds", Difficulty: "medium", Category: "HCF and LCM"},
		{Text: "Find HCF of 56 and 98.", Options: []string{"7", "14", "28", "2"}, CorrectOptionIndex: 1, Solution: "HCF(56,98) = 14", Difficulty: "easy", Category: "HCF and LCM"},
		{Text: "Find LCM of 8, 12, 16.", Options: []string{"24", "48", "96", "192"}, CorrectOptionIndex: 1, Solution: "LCM(8,12,16) = 48", Difficulty: "easy", Category: "HCF and LCM"},
	},
	"Average": {
		{Text: "The average of 5 numbers is 20. What is their sum?", Options: []string{"80", "100", "120", "25"}, CorrectOptionIndex: 1, Solution: "Sum = Average × Count = 20 × 5 = 100", Difficulty: "easy", Category: "Average"},
		{Text: "Find the average of first 10 natural numbers.", Options: []string{"5", "5.5", "6", "10"}, CorrectOptionIndex: 1, Solution: "Avg = (1+10)/2 = 5.5", Difficulty: "easy", Category: "Average"},
		{Text: "The average of 4 numbers is 25. If one number is removed, average becomes 20. Find the removed number.", Options: []string{"30", "35", "40", "45"}, CorrectOptionIndex: 2, Solution: "Sum of 4 = 100. Sum of 3 = 60. Removed = 40", Difficulty: "medium", Category: "Average"},
		{Text: "Average age of 5 students is 18. A new student joins making average 17. Find new students age.", Options: []string{"10", "11", "12", "13"}, CorrectOptionIndex: 2, Solution: "Old sum = 90. New sum = 102. New age = 102-90 = 12", Difficulty: "medium", Category: "Average"},
		{Text: "The average of 10, 20, 30, 40 is:", Options: []string{"20", "25", "30", "100"}, CorrectOptionIndex: 1, Solution: "Avg = (10+20+30+40)/4 = 100/4 = 25", Difficulty: "easy", Category: "Average"},
		{Text: "Average of 3 numbers is 15. Two numbers are 10 and 20. Find the third.", Options: []string{"10", "15", "20", "25"}, CorrectOptionIndex: 1, Solution: "Sum = 45. Third = 45 - 10 - 20 = 15", Difficulty: "easy", Category: "Average"},
		{Text: "A batsman scores 87 runs increasing average by 3 from 39. How many matches played now?", Options: []string{"12", "14", "16", "18"}, CorrectOptionIndex: 2, Solution: "Let n be matches. 39(n-1)+87=42n, n=16", Difficulty: "hard", Category: "Average"},
		{Text: "Average of first 5 multiples of 3 is:", Options: []string{"6", "9", "12", "15"}, CorrectOptionIndex: 1, Solution: "Multiples: 3,6,9,12,15. Avg = 45/5 = 9", Difficulty: "easy", Category: "Average"},
		{Text: "The average weight of A, B, C is 45 kg. If D joins, average becomes 43 kg. Find Ds weight.", Options: []string{"35", "37", "39", "41"}, CorrectOptionIndex: 1, Solution: "Sum of ABC = 135. Sum of ABCD = 172. D = 37", Difficulty: "medium", Category: "Average"},
		{Text: "Average of 20, 30, x is 30. Find x.", Options: []string{"30", "35", "40", "45"}, CorrectOptionIndex: 2, Solution: "Sum = 90. x = 90 - 20 - 30 = 40", Difficulty: "easy", Category: "Average"},
		{Text: "The average of first 50 natural numbers is:", Options: []string{"25", "25.5", "26", "50"}, CorrectOptionIndex: 1, Solution: "Avg = (1+50)/2 = 25.5", Difficulty: "easy", Category: "Average"},
		{Text: "Average of 5 consecutive odd numbers starting from 3 is:", Options: []string{"5", "7", "9", "11"}, CorrectOptionIndex: 1, Solution: "Numbers: 3,5,7,9,11. Avg = 35/5 = 7", Difficulty: "easy", Category: "Average"},
	},
	"Time, Speed and Distance": {
		{Text: "A car travels 60 km in 1 hour. How far in 2.5 hours?", Options: []string{"120 km", "150 km", "180 km", "200 km"}, CorrectOptionIndex: 1, Solution: "Distance = 60 × 2.5 = 150 km", Difficulty: "easy", Category: "Time, Speed and Distance"},
		{Text: "A train covers 300 km in 5 hours. Find its speed.", Options: []string{"50 km/h", "60 km/h", "70 km/h", "75 km/h"}, CorrectOptionIndex: 1, Solution: "Speed = 300/5 = 60 km/h", Difficulty: "easy", Category: "Time, Speed and Distance"},
		{Text: "A person walks at 5 km/h. How long to cover 15 km?", Options: []string{"2 hrs", "2.5 hrs", "3 hrs", "3.5 hrs"}, CorrectOptionIndex: 2, Solution: "Time = 15/5 = 3 hours", Difficulty: "easy", Category: "Time, Speed and Distance"},
		{Text: "Speed of a car is 72 km/h. Convert to m/s.", Options: []string{"18 m/s", "20 m/s", "25 m/s", "36 m/s"}, CorrectOptionIndex: 1, Solution: "72 × 5/18 = 20 m/s", Difficulty: "easy", Category: "Time, Speed and Distance"},
		{Text: "Two trains going opposite at 40 and 60 km/h. Distance apart after 3 hrs?", Options: []string{"200 km", "250 km", "300 km", "360 km"}, CorrectOptionIndex: 2, Solution: "Relative speed = 100 km/h. Distance = 300 km", Difficulty: "medium", Category: "Time, Speed and Distance"},
		{Text: "A man covers half distance at 40 km/h and half at 60 km/h. Average speed?", Options: []string{"48 km/h", "50 km/h", "52 km/h", "55 km/h"}, CorrectOptionIndex: 0, Solution: "Avg = 2×40×60/(40+60) = 48 km/h", Difficulty: "medium", Category: "Time, Speed and Distance"},
		{Text: "A cyclist covers 12 km in 40 minutes. Speed in km/h?", Options: []string{"15", "18", "20", "24"}, CorrectOptionIndex: 1, Solution: "Speed = 12/(40/60) = 18 km/h", Difficulty: "easy", Category: "Time, Speed and Distance"},
		{Text: "A train 100m long passes a pole in 10 seconds. Speed?", Options: []string{"10 m/s", "20 m/s", "36 km/h", "10 m/s or 36 km/h"}, CorrectOptionIndex: 3, Solution: "Speed = 100/10 = 10 m/s = 36 km/h", Difficulty: "easy", Category: "Time, Speed and Distance"},
		{Text: "If speed increases by 20%, time decreases by?", Options: []string{"16.67%", "20%", "25%", "33.33%"}, CorrectOptionIndex: 0, Solution: "Time = 1/1.2 = 0.833. Decrease = 16.67%", Difficulty: "hard", Category: "Time, Speed and Distance"},
		{Text: "A car covers 120 km in 2 hrs. How long for 300 km?", Options: []string{"4 hrs", "5 hrs", "6 hrs", "7 hrs"}, CorrectOptionIndex: 1, Solution: "Speed = 60. Time = 300/60 = 5 hrs", Difficulty: "easy", Category: "Time, Speed and Distance"},
		{Text: "Convert 20 m/s to km/h.", Options: []string{"54", "72", "80", "36"}, CorrectOptionIndex: 1, Solution: "20 × 18/5 = 72 km/h", Difficulty: "easy", Category: "Time, Speed and Distance"},
		{Text: "A bus travels at 45 km/h. Distance in 20 minutes?", Options: []string{"10 km", "12 km", "15 km", "18 km"}, CorrectOptionIndex: 2, Solution: "Distance = 45 × (20/60) = 15 km", Difficulty: "easy", Category: "Time, Speed and Distance"},
	},
	"Percentage": {
		{Text: "What is 25% of 200?", Options: []string{"40", "50", "60", "75"}, CorrectOptionIndex: 1, Solution: "25% of 200 = 50", Difficulty: "easy", Category: "Percentage"},
		{Text: "40 is what percent of 200?", Options: []string{"15%", "20%", "25%", "30%"}, CorrectOptionIndex: 1, Solution: "(40/200) × 100 = 20%", Difficulty: "easy", Category: "Percentage"},
		{Text: "A number increased by 20% becomes 60. Find the number.", Options: []string{"48", "50", "52", "55"}, CorrectOptionIndex: 1, Solution: "x × 1.2 = 60. x = 50", Difficulty: "easy", Category: "Percentage"},
		{Text: "If price increases 25%, what % should consumption decrease to keep expenditure same?", Options: []string{"20%", "25%", "30%", "33%"}, CorrectOptionIndex: 0, Solution: "Decrease = 25/125 × 100 = 20%", Difficulty: "medium", Category: "Percentage"},
		{Text: "60% of a number is 90. Find the number.", Options: []string{"120", "150", "180", "200"}, CorrectOptionIndex: 1, Solution: "0.6x = 90. x = 150", Difficulty: "easy", Category: "Percentage"},
		{Text: "A increases by 10% then decreases by 10%. Net change?", Options: []string{"-1%", "0%", "+1%", "-2%"}, CorrectOptionIndex: 0, Solution: "1.1 × 0.9 = 0.99 = -1%", Difficulty: "medium", Category: "Percentage"},
		{Text: "Population increases 10000 to 12100 in 2 years. Annual rate?", Options: []string{"10%", "11%", "15%", "20%"}, CorrectOptionIndex: 0, Solution: "10000 × (1+r)² = 12100. r = 10%", Difficulty: "medium", Category: "Percentage"},
		{Text: "75% of 80 equals what percent of 120?", Options: []string{"40%", "50%", "60%", "75%"}, CorrectOptionIndex: 1, Solution: "75% of 80 = 60. 60/120 × 100 = 50%", Difficulty: "medium", Category: "Percentage"},
		{Text: "What is 15% of 300?", Options: []string{"35", "40", "45", "50"}, CorrectOptionIndex: 2, Solution: "15% of 300 = 45", Difficulty: "easy", Category: "Percentage"},
		{Text: "Express 3/4 as a percentage.", Options: []string{"60%", "70%", "75%", "80%"}, CorrectOptionIndex: 2, Solution: "3/4 × 100 = 75%", Difficulty: "easy", Category: "Percentage"},
		{Text: "A bag sold for Rs.100 with 25% profit. Cost price?", Options: []string{"Rs.75", "Rs.80", "Rs.85", "Rs.90"}, CorrectOptionIndex: 1, Solution: "CP = 100/1.25 = 80", Difficulty: "medium", Category: "Percentage"},
		{Text: "What percent is 18 of 90?", Options: []string{"15%", "18%", "20%", "25%"}, CorrectOptionIndex: 2, Solution: "18/90 × 100 = 20%", Difficulty: "easy", Category: "Percentage"},
	},
	"Time & Work": {
		{Text: "A can do a work in 10 days. Work done in 1 day?", Options: []string{"1/5", "1/10", "1/15", "1/20"}, CorrectOptionIndex: 1, Solution: "Work per day = 1/10", Difficulty: "easy", Category: "Time & Work"},
		{Text: "A can do work in 10 days, B in 15 days. Together?", Options: []string{"5 days", "6 days", "7 days", "8 days"}, CorrectOptionIndex: 1, Solution: "Combined = 1/10 + 1/15 = 1/6. Days = 6", Difficulty: "medium", Category: "Time & Work"},
		{Text: "A is twice as efficient as B. A takes 12 days. B takes?", Options: []string{"18", "20", "24", "30"}, CorrectOptionIndex: 2, Solution: "B takes 2 × 12 = 24 days", Difficulty: "easy", Category: "Time & Work"},
		{Text: "10 men can do work in 15 days. How many men for 10 days?", Options: []string{"12", "15", "18", "20"}, CorrectOptionIndex: 1, Solution: "Men × Days = constant. 10×15 = x×10. x = 15", Difficulty: "medium", Category: "Time & Work"},
		{Text: "A and B together in 6 days. A alone in 10 days. B alone?", Options: []string{"12 days", "15 days", "18 days", "20 days"}, CorrectOptionIndex: 1, Solution: "1/6 - 1/10 = 1/15. B = 15 days", Difficulty: "medium", Category: "Time & Work"},
		{Text: "A can complete 1/3 of work in 5 days. Full work in?", Options: []string{"10", "12", "15", "18"}, CorrectOptionIndex: 2, Solution: "Full work = 5 × 3 = 15 days", Difficulty: "easy", Category: "Time & Work"},
		{Text: "6 workers complete job in 8 days. 4 workers take?", Options: []string{"10", "12", "14", "16"}, CorrectOptionIndex: 1, Solution: "6×8 = 4×x. x = 12 days", Difficulty: "easy", Category: "Time & Work"},
		{Text: "A does half work in 8 days. Full work in?", Options: []string{"12", "14", "16", "18"}, CorrectOptionIndex: 2, Solution: "Full = 8 × 2 = 16 days", Difficulty: "easy", Category: "Time & Work"},
		{Text: "A works 2x as fast as B. Together in 12 days. A alone?", Options: []string{"16", "18", "20", "24"}, CorrectOptionIndex: 1, Solution: "A = 2B. (A+B)/work = 3B = 1/12. A = 2/36. A alone = 18", Difficulty: "hard", Category: "Time & Work"},
		{Text: "If 4 men or 6 women can do work in 12 days, 2 men and 3 women take?", Options: []string{"10", "12", "14", "16"}, CorrectOptionIndex: 1, Solution: "2M+3W = 1M+3W+1M = work of (3+3)=6W or 4M in 12 days", Difficulty: "hard", Category: "Time & Work"},
		{Text: "A can do work in 20 days. Work done in 4 days?", Options: []string{"1/4", "1/5", "4/5", "1/20"}, CorrectOptionIndex: 1, Solution: "Work = 4/20 = 1/5", Difficulty: "easy", Category: "Time & Work"},
		{Text: "A takes 6 days, B takes 12 days. Together?", Options: []string{"3", "4", "5", "6"}, CorrectOptionIndex: 1, Solution: "1/6 + 1/12 = 3/12 = 1/4. Together = 4 days", Difficulty: "easy", Category: "Time & Work"},
	},
	"Directions": {
		{Text: "A person walks 4 km North, then turns right and walks 3 km. How far is he from the starting point?", Options: []string{"5 km", "7 km", "1 km", "12 km"}, CorrectOptionIndex: 0, Solution: "Hypotenuse = √(4^2 + 3^2) = 5 km", Difficulty: "easy", Category: "Directions"},
		{Text: "A man facing North turns 90 degrees clockwise. Which direction is he facing now?", Options: []string{"North", "East", "South", "West"}, CorrectOptionIndex: 1, Solution: "North + 90° clockwise = East", Difficulty: "easy", Category: "Directions"},
		{Text: "Ram walks 10 km South, then turns left and walks 5 km. Which direction is he from the start?", Options: []string{"South-East", "South-West", "North-East", "North-West"}, CorrectOptionIndex: 0, Solution: "South then Left (East) -> South-East", Difficulty: "medium", Category: "Directions"},
		{Text: "Sun rises in the East. If you face North, which direction is on your right?", Options: []string{"West", "South", "East", "North"}, CorrectOptionIndex: 2, Solution: "Right of North is East", Difficulty: "easy", Category: "Directions"},
		{Text: "A starts from a point, walks 2 km North, turns right walks 2 km, turns right again, walks 2 km. Direction from start?", Options: []string{"East", "West", "North", "South"}, CorrectOptionIndex: 0, Solution: "Final position is 2km East", Difficulty: "medium", Category: "Directions"},
	},
	"Problems on Ages": {
		{Text: "The age of father is 3 times his son. If son is 15, how old is father?", Options: []string{"30", "40", "45", "50"}, CorrectOptionIndex: 2, Solution: "3 * 15 = 45", Difficulty: "easy", Category: "Problems on Ages"},
		{Text: "A is 2 years older than B who is twice as old as C. If A+B+C = 27, how old is B?", Options: []string{"7", "8", "9", "10"}, CorrectOptionIndex: 3, Solution: "C=x, B=2x, A=2x+2. 5x+2=27, x=5. B=10", Difficulty: "medium", Category: "Problems on Ages"},
		{Text: "Ratio of ages of A and B is 4:5. If sum is 81, find A's age.", Options: []string{"36", "45", "35", "40"}, CorrectOptionIndex: 0, Solution: "9x = 81 -> x=9. A = 4*9 = 36", Difficulty: "easy", Category: "Problems on Ages"},
		{Text: "Present ages of A and B are in ratio 5:6. Seven years hence ratio is 6:7. Present age of A?", Options: []string{"35", "40", "30", "42"}, CorrectOptionIndex: 0, Solution: "gap is 1 part = 7 years. A = 5 * 7 = 35", Difficulty: "medium", Category: "Problems on Ages"},
	},
	"Blood Relation": {
		{Text: "A is the brother of B. B is the sister of C. How is A related to C?", Options: []string{"Father", "Brother", "Uncle", "Son"}, CorrectOptionIndex: 1, Solution: "A is male (brother). A and B are siblings. B and C are siblings. So A is brother of C", Difficulty: "easy", Category: "Blood Relation"},
		{Text: "Pointing to a photo, a man said \"She is the daughter of my grandfather's only son\". How is she related to him?", Options: []string{"Sister", "Cousin", "Aunt", "Mother"}, CorrectOptionIndex: 0, Solution: "Grandfather's only son is father. Father's daughter is sister", Difficulty: "medium", Category: "Blood Relation"},
		{Text: "A is B's sister. C is B's mother. D is C's father. How is A related to D?", Options: []string{"Granddaughter", "Daughter", "Grandmother", "Aunt"}, CorrectOptionIndex: 0, Solution: "A is daughter of C. C is daughter of D. So A is granddaughter of D", Difficulty: "medium", Category: "Blood Relation"},
	},
	"Number Series": {
		{Text: "Find next: 2, 5, 10, 17, ?", Options: []string{"24", "25", "26", "27"}, CorrectOptionIndex: 2, Solution: "+3, +5, +7, +9. 17+9=26", Difficulty: "easy", Category: "Number Series"},
		{Text: "Find next: 1, 8, 27, 64, ?", Options: []string{"100", "125", "121", "144"}, CorrectOptionIndex: 1, Solution: "Cubes: 1, 2, 3, 4, 5^3=125", Difficulty: "medium", Category: "Number Series"},
		{Text: "Find next: 8, 24, 12, 36, 18, ?", Options: []string{"54", "24", "48", "72"}, CorrectOptionIndex: 0, Solution: "*3, /2, *3, /2, *3. 18*3=54", Difficulty: "hard", Category: "Number Series"},
	},
	"Ratio & Proportion": {
		{Text: "If A:B=2:3 and B:C=4:5, find A:C", Options: []string{"8:15", "2:5", "4:5", "6:15"}, CorrectOptionIndex: 0, Solution: "A/B * B/C = A/C = 2/3 * 4/5 = 8/15", Difficulty: "easy", Category: "Ratio & Proportion"},
		{Text: "Divide 1000 in ratio 2:3", Options: []string{"200:800", "400:600", "300:700", "500:500"}, CorrectOptionIndex: 1, Solution: "Part 1 = 2/5 * 1000 = 400. Part 2 = 600", Difficulty: "easy", Category: "Ratio & Proportion"},
		{Text: "Fourth proportional to 4, 8, 12 is?", Options: []string{"18", "20", "22", "24"}, CorrectOptionIndex: 3, Solution: "4/8 = 12/x. x=24", Difficulty: "medium", Category: "Ratio & Proportion"},
	},
	"Mixture & Alligation": {
		{Text: "In what ratio must rice at $10/kg be mixed with rice at $15/kg to get $12/kg?", Options: []string{"3:2", "2:3", "1:1", "4:1"}, CorrectOptionIndex: 0, Solution: "Alligation: (15-12):(12-10) = 3:2", Difficulty: "medium", Category: "Mixture & Alligation"},
		{Text: "Milk and water in ratio 3:1. How much water to add to make it 1:1 if total is 40L?", Options: []string{"10L", "20L", "30L", "5L"}, CorrectOptionIndex: 1, Solution: "Milk=30, Water=10. New Water=30. Add 20L", Difficulty: "hard", Category: "Mixture & Alligation"},
	},
	"Alphanumeric Series": {
		{Text: "Find next: A1, C3, E5, ?", Options: []string{"G7", "F6", "H8", "G8"}, CorrectOptionIndex: 0, Solution: "Letters +2, Numbers +2. G7", Difficulty: "easy", Category: "Alphanumeric Series"},
		{Text: "Find next: 2B, 4C, 8E, 14H, ?", Options: []string{"22L", "20K", "22K", "18J"}, CorrectOptionIndex: 0, Solution: "Num: +2,+4,+6,+8 -> 22. Lett: +1,+2,+3,+4 -> L", Difficulty: "medium", Category: "Alphanumeric Series"},
	},
	"Simple Interest": {
		{Text: "P=1000, R=10%, T=2 yrs. SI?", Options: []string{"100", "200", "300", "400"}, CorrectOptionIndex: 1, Solution: "SI = PRT/100 = 200", Difficulty: "easy", Category: "Simple Interest"},
		{Text: "Sum doubles in 5 years at SI. Rate?", Options: []string{"10%", "15%", "20%", "25%"}, CorrectOptionIndex: 2, Solution: "SI=P. P = P*R*5/100. R=20%", Difficulty: "medium", Category: "Simple Interest"},
	},
	"Compound Interest": {
		{Text: "P=1000, R=10%, T=2 yrs. CI?", Options: []string{"200", "210", "220", "250"}, CorrectOptionIndex: 1, Solution: "A = 1000(1.1)^2 = 1210. CI = 210", Difficulty: "medium", Category: "Compound Interest"},
		{Text: "Difference between CI and SI for 2 yrs at 10% on 1000?", Options: []string{"10", "20", "30", "0"}, CorrectOptionIndex: 0, Solution: "SI=200, CI=210. Diff=10", Difficulty: "hard", Category: "Compound Interest"},
	},
	"Seating Arrangement 1": {
		{Text: "5 people A,B,C,D,E in a row. C is in middle. A is left of B. B is left of C. Order?", Options: []string{"ABCDE", "BACDE", "ABCED", "ABDEC"}, CorrectOptionIndex: 0, Solution: "A-B-C. Others flexible", Difficulty: "easy", Category: "Seating Arrangement 1"},
	},
	"Seating Arrangement 2": {
		{Text: "6 people in circle facing center. A opposite B. C between A and D. Who is opposite C?", Options: []string{"D", "E", "F", "B"}, CorrectOptionIndex: 1, Solution: "Requires diagram. Usually implies symmetric placement", Difficulty: "hard", Category: "Seating Arrangement 2"},
	},
	"Data Interpretation": {
		{Text: "Pie chart 360 deg = 100%. Angle for 25%?", Options: []string{"60", "90", "120", "45"}, CorrectOptionIndex: 1, Solution: "25/100 * 360 = 90 degrees", Difficulty: "easy", Category: "Data Interpretation"},
		{Text: "If 5 + 3 = 8, what is 15 + 9?", Options: []string{"22", "24", "26", "28"}, CorrectOptionIndex: 1, Solution: "15 + 9 = 24", Difficulty: "easy", Category: "General Aptitude"},
		{Text: "What comes next: 2, 4, 8, 16, ?", Options: []string{"20", "24", "32", "64"}, CorrectOptionIndex: 2, Solution: "Pattern: ×2. Next = 32", Difficulty: "easy", Category: "General Aptitude"},
		{Text: "If 6 pens cost Rs. 30, how much do 10 pens cost?", Options: []string{"Rs. 40", "Rs. 50", "Rs. 60", "Rs. 100"}, CorrectOptionIndex: 1, Solution: "Cost = (30/6) × 10 = 50", Difficulty: "easy", Category: "General Aptitude"},
		{Text: "A is 2 yrs older than B. B is 3 yrs older than C. A is how many yrs older than C?", Options: []string{"4", "5", "6", "7"}, CorrectOptionIndex: 1, Solution: "A - C = 2 + 3 = 5 years", Difficulty: "easy", Category: "General Aptitude"},
		{Text: "Find the odd one out: 2, 5, 10, 17, 28", Options: []string{"2", "5", "17", "28"}, CorrectOptionIndex: 3, Solution: "Pattern: +3, +5, +7, +9. 17+9=26, not 28", Difficulty: "medium", Category: "General Aptitude"},
		{Text: "Complete: 1, 1, 2, 3, 5, 8, ?", Options: []string{"10", "11", "12", "13"}, CorrectOptionIndex: 3, Solution: "Fibonacci: 5+8=13", Difficulty: "easy", Category: "General Aptitude"},
		{Text: "If 20% of a number is 30, what is 50% of that number?", Options: []string{"60", "75", "90", "100"}, CorrectOptionIndex: 1, Solution: "Number = 150. 50% of 150 = 75", Difficulty: "easy", Category: "General Aptitude"},
		{Text: "A clock shows 3:15. Angle between hands?", Options: []string{"0°", "7.5°", "15°", "30°"}, CorrectOptionIndex: 1, Solution: "Hour at 97.5°, Min at 90°. Diff = 7.5°", Difficulty: "medium", Category: "General Aptitude"},
		{Text: "If APPLE = 50, what is CAT?", Options: []string{"24", "27", "30", "33"}, CorrectOptionIndex: 0, Solution: "C=3, A=1, T=20. Sum = 24", Difficulty: "easy", Category: "General Aptitude"},
		{Text: "Find next: 3, 6, 11, 18, ?", Options: []string{"25", "27", "29", "31"}, CorrectOptionIndex: 1, Solution: "Pattern: +3, +5, +7, +9. Next = 27", Difficulty: "easy", Category: "General Aptitude"},
		{Text: "If A = 1, B = 2, what is Z?", Options: []string{"24", "25", "26", "27"}, CorrectOptionIndex: 2, Solution: "Z is 26th letter = 26", Difficulty: "easy", Category: "General Aptitude"},
	},
}

// defaultBank backs topics that have no dedicated entry. Must stay non-empty;
// the fallback path has nothing below it.
var defaultBank = []models.Question{
	{Text: "If 5 + 3 = 8, what is 15 + 9?", Options: []string{"22", "24", "26", "28"}, CorrectOptionIndex: 1, Solution: "15 + 9 = 24", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "What comes next: 2, 4, 8, 16, ?", Options: []string{"20", "24", "32", "64"}, CorrectOptionIndex: 2, Solution: "Pattern: ×2. Next = 32", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "If 6 pens cost Rs. 30, how much do 10 pens cost?", Options: []string{"Rs. 40", "Rs. 50", "Rs. 60", "Rs. 100"}, CorrectOptionIndex: 1, Solution: "Cost = (30/6) × 10 = 50", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "A is 2 yrs older than B. B is 3 yrs older than C. A is how many yrs older than C?", Options: []string{"4", "5", "6", "7"}, CorrectOptionIndex: 1, Solution: "A - C = 2 + 3 = 5 years", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "Find the odd one out: 2, 5, 10, 17, 28", Options: []string{"2", "5", "17", "28"}, CorrectOptionIndex: 3, Solution: "Pattern: +3, +5, +7, +9. 17+9=26, not 28", Difficulty: "medium", Category: "General Aptitude"},
	{Text: "Complete: 1, 1, 2, 3, 5, 8, ?", Options: []string{"10", "11", "12", "13"}, CorrectOptionIndex: 3, Solution: "Fibonacci: 5+8=13", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "If 20% of a number is 30, what is 50% of that number?", Options: []string{"60", "75", "90", "100"}, CorrectOptionIndex: 1, Solution: "Number = 150. 50% of 150 = 75", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "A clock shows 3:15. Angle between hands?", Options: []string{"0°", "7.5°", "15°", "30°"}, CorrectOptionIndex: 1, Solution: "Hour at 97.5°, Min at 90°. Diff = 7.5°", Difficulty: "medium", Category: "General Aptitude"},
	{Text: "If APPLE = 50, what is CAT?", Options: []string{"24", "27", "30", "33"}, CorrectOptionIndex: 0, Solution: "C=3, A=1, T=20. Sum = 24", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "Find next: 3, 6, 11, 18, ?", Options: []string{"25", "27", "29", "31"}, CorrectOptionIndex: 1, Solution: "Pattern: +3, +5, +7, +9. Next = 27", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "If A = 1, B = 2, what is Z?", Options: []string{"24", "25", "26", "27"}, CorrectOptionIndex: 2, Solution: "Z is 26th letter = 26", Difficulty: "easy", Category: "General Aptitude"},
	{Text: "What day comes 3 days after Monday?", Options: []string{"Wednesday", "Thursday", "Friday", "Saturday"}, CorrectOptionIndex: 1, Solution: "Mon → Tue → Wed → Thu", Difficulty: "easy", Category: "General Aptitude"},
}
