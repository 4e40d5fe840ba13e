package feedbackcatalog

import (
	feedbackapimodels "interview-trainer-backend/models/api/feedback"
)

// The catalogs are fixed product content, replayed across all sessions.
// Verbal entries are keyed by the trigger word; several multi-word triggers
// are kept for completeness even though the keyword matcher works on single
// words only.
var verbalCatalog = []feedbackapimodels.VerbalEntry{
	{ID: 1, Word: "stuff", Text: "Be specific; mention key projects and their impact.", Type: 0, IsPositive: 0},
	{ID: 2, Word: "basically", Text: "Get straight to the point; avoid overusing 'basically.'", Type: 0, IsPositive: 0},
	{ID: 3, Word: "like", Text: "Limit filler words; pausing is more confident.", Type: 0, IsPositive: 0},
	{ID: 4, Word: "passionate", Text: "Show passion with impactful examples.", Type: 0, IsPositive: 0},
	{ID: 5, Word: "hardworking", Text: "Share specific examples of going above and beyond.", Type: 0, IsPositive: 0},
	{ID: 6, Word: "team player", Text: "Provide examples of successful teamwork.", Type: 0, IsPositive: 0},
	{ID: 7, Word: "detail-oriented", Text: "Prove it with examples like catching critical errors.", Type: 0, IsPositive: 0},
	{ID: 8, Word: "probably", Text: "Avoid uncertainty; sound confident.", Type: 0, IsPositive: 0},
	{ID: 9, Word: "try", Text: "Say 'I will' instead to project confidence.", Type: 0, IsPositive: 0},
	{ID: 10, Word: "just", Text: "Don't downplay contributions; own your impact.", Type: 0, IsPositive: 0},
	{ID: 11, Word: "I think", Text: "State strengths confidently; drop 'I think.'", Type: 0, IsPositive: 0},
	{ID: 12, Word: "sorry", Text: "Avoid unnecessary apologies; focus on solutions.", Type: 0, IsPositive: 0},
	{ID: 13, Word: "I don't have experience", Text: "Highlight transferable skills for the role.", Type: 0, IsPositive: 0},
	{ID: 14, Word: "I know this isn't a great answer", Text: "Deliver your answer confidently.", Type: 0, IsPositive: 0},
	{ID: 15, Word: "I did this", Text: "Balance 'I' and 'we' to show teamwork.", Type: 0, IsPositive: 0},
	{ID: 16, Word: "achieved", Text: "Demonstrate measurable results (e.g., increased sales by 20%).", Type: 0, IsPositive: 1},
	{ID: 17, Word: "led", Text: "Show leadership (e.g., led a team of five).", Type: 0, IsPositive: 1},
	{ID: 18, Word: "managed", Text: "Highlight responsibility (e.g., managed multiple projects).", Type: 0, IsPositive: 1},
	{ID: 19, Word: "implemented", Text: "Show initiative (e.g., implemented a time-saving process).", Type: 0, IsPositive: 1},
	{ID: 20, Word: "exceeded", Text: "Demonstrate going beyond expectations (e.g., surpassed sales targets).", Type: 0, IsPositive: 1},
	{ID: 21, Word: "resolved", Text: "Highlight problem-solving (e.g., resolved customer complaints).", Type: 0, IsPositive: 1},
	{ID: 22, Word: "optimized", Text: "Show efficiency improvements (e.g., reduced turnaround time).", Type: 0, IsPositive: 1},
	{ID: 23, Word: "improved", Text: "Demonstrate growth (e.g., improved client retention by 15%).", Type: 0, IsPositive: 1},
	{ID: 24, Word: "developed", Text: "Show creativity (e.g., developed a new system).", Type: 0, IsPositive: 1},
	{ID: 25, Word: "enhanced", Text: "Show value addition (e.g., increased productivity).", Type: 0, IsPositive: 1},
	{ID: 26, Word: "collaborated", Text: "Highlight teamwork (e.g., worked with cross-functional teams).", Type: 0, IsPositive: 1},
	{ID: 27, Word: "supported", Text: "Show contributions (e.g., helped meet deadlines).", Type: 0, IsPositive: 1},
	{ID: 28, Word: "partnered", Text: "Show strategic teamwork (e.g., partnered with marketing).", Type: 0, IsPositive: 1},
	{ID: 29, Word: "mentored", Text: "Highlight leadership (e.g., guided new employees).", Type: 0, IsPositive: 1},
	{ID: 30, Word: "engaged", Text: "Show active participation (e.g., engaged with clients).", Type: 0, IsPositive: 1},
	{ID: 31, Word: "learned", Text: "Show adaptability (e.g., quickly learned new tools).", Type: 0, IsPositive: 1},
	{ID: 32, Word: "adapted", Text: "Show flexibility (e.g., adjusted to new policies).", Type: 0, IsPositive: 1},
	{ID: 33, Word: "overcame", Text: "Highlight resilience (e.g., met tight deadlines).", Type: 0, IsPositive: 1},
	{ID: 34, Word: "transformed", Text: "Show innovation (e.g., revamped reporting systems).", Type: 0, IsPositive: 1},
	{ID: 35, Word: "expanded", Text: "Show growth mindset (e.g., expanded skills to include data analysis).", Type: 0, IsPositive: 1},
	{ID: 36, Word: "mmm", Text: "Replace filler sounds with a confident pause.", Type: 0, IsPositive: 0},
	{ID: 37, Word: "uh", Text: "Minimize fillers; pause confidently instead.", Type: 0, IsPositive: 0},
	{ID: 38, Word: "um", Text: "Avoid 'um'; use a thoughtful pause.", Type: 0, IsPositive: 0},
	{ID: 39, Word: "like I said", Text: "Avoid redundancy; keep it concise.", Type: 0, IsPositive: 0},
	{ID: 40, Word: "you know", Text: "Limit this phrase for polished answers.", Type: 0, IsPositive: 0},
	{ID: 41, Word: "so", Text: "Avoid overusing as a transition; get to the point.", Type: 0, IsPositive: 0},
	{ID: 42, Word: "actually", Text: "Drop 'actually' to strengthen your statements.", Type: 0, IsPositive: 0},
	{ID: 43, Word: "well", Text: "Use sparingly; focus on key points.", Type: 0, IsPositive: 0},
	{ID: 44, Word: "ehm", Text: "Minimize this filler; pause confidently.", Type: 0, IsPositive: 0},
	{ID: 45, Word: "uhm", Text: "Replace with a confident pause.", Type: 0, IsPositive: 0},
}

var nonVerbalCatalog = []feedbackapimodels.NonVerbalEntry{
	{ID: 1, Text: "You maintained good eye contact throughout the interview.", Type: 1, IsPositive: 1},
	{ID: 2, Text: "You avoided eye contact frequently; try to maintain it more.", Type: 1, IsPositive: 0},
	{ID: 3, Text: "Your posture was confident and upright.", Type: 1, IsPositive: 1},
	{ID: 4, Text: "You slouched at times; try to sit up straight.", Type: 1, IsPositive: 0},
	{ID: 5, Text: "You used hand gestures effectively to emphasize key points.", Type: 1, IsPositive: 1},
	{ID: 6, Text: "Your hand gestures were distracting; try to minimize them.", Type: 1, IsPositive: 0},
	{ID: 7, Text: "Your facial expressions were warm and engaging.", Type: 1, IsPositive: 1},
	{ID: 8, Text: "Your facial expressions seemed stiff; try to relax more.", Type: 1, IsPositive: 0},
	{ID: 9, Text: "You nodded appropriately to show active listening.", Type: 1, IsPositive: 1},
	{ID: 10, Text: "You nodded excessively, which became distracting.", Type: 1, IsPositive: 0},
	{ID: 11, Text: "Your smile created a positive impression.", Type: 1, IsPositive: 1},
	{ID: 12, Text: "You rarely smiled; try to appear more approachable.", Type: 1, IsPositive: 0},
	{ID: 13, Text: "You maintained an appropriate distance from the interviewer.", Type: 1, IsPositive: 1},
	{ID: 14, Text: "You leaned too far back, which seemed disengaged.", Type: 1, IsPositive: 0},
	{ID: 15, Text: "Your handshake was firm and professional.", Type: 1, IsPositive: 1},
	{ID: 16, Text: "Your handshake was weak; try to make it firmer.", Type: 1, IsPositive: 0},
	{ID: 17, Text: "You maintained a calm demeanor under pressure.", Type: 1, IsPositive: 1},
	{ID: 18, Text: "You fidgeted a lot; try to stay more composed.", Type: 1, IsPositive: 0},
	{ID: 19, Text: "You made appropriate use of space while seated.", Type: 1, IsPositive: 1},
	{ID: 20, Text: "You crossed your arms, which might appear defensive.", Type: 1, IsPositive: 0},
	{ID: 21, Text: "Your body language conveyed enthusiasm and interest.", Type: 1, IsPositive: 1},
	{ID: 22, Text: "You seemed closed off due to your posture.", Type: 1, IsPositive: 0},
	{ID: 23, Text: "You maintained consistent and confident gestures.", Type: 1, IsPositive: 1},
	{ID: 24, Text: "Your movements seemed rushed or nervous.", Type: 1, IsPositive: 0},
	{ID: 25, Text: "You leaned forward slightly, showing interest.", Type: 1, IsPositive: 1},
	{ID: 26, Text: "You leaned back excessively, appearing disinterested.", Type: 1, IsPositive: 0},
	{ID: 27, Text: "Your attire was professional and well-presented.", Type: 1, IsPositive: 1},
	{ID: 28, Text: "Your attire could have been more polished.", Type: 1, IsPositive: 0},
	{ID: 29, Text: "You avoided unnecessary physical distractions.", Type: 1, IsPositive: 1},
	{ID: 30, Text: "You played with your hair or accessories frequently.", Type: 1, IsPositive: 0},
	{ID: 31, Text: "Your gestures matched your verbal communication.", Type: 1, IsPositive: 1},
	{ID: 32, Text: "Your gestures sometimes contradicted your words.", Type: 1, IsPositive: 0},
	{ID: 33, Text: "Your facial expressions matched your responses well.", Type: 1, IsPositive: 1},
	{ID: 34, Text: "Your expressions sometimes seemed out of sync with your tone.", Type: 1, IsPositive: 0},
	{ID: 35, Text: "You maintained a steady and natural breathing pattern.", Type: 1, IsPositive: 1},
	{ID: 36, Text: "You appeared visibly tense at times.", Type: 1, IsPositive: 0},
	{ID: 37, Text: "Your hand movements were purposeful.", Type: 1, IsPositive: 1},
	{ID: 38, Text: "Your hands were hidden under the table too often.", Type: 1, IsPositive: 0},
	{ID: 39, Text: "You showed active listening through subtle nods and expressions.", Type: 1, IsPositive: 1},
	{ID: 40, Text: "You seemed distracted or distant at moments.", Type: 1, IsPositive: 0},
	{ID: 41, Text: "Your overall demeanor was approachable and friendly.", Type: 1, IsPositive: 1},
	{ID: 42, Text: "You seemed overly serious; try to relax a bit.", Type: 1, IsPositive: 0},
	{ID: 43, Text: "You maintained appropriate facial engagement.", Type: 1, IsPositive: 1},
	{ID: 44, Text: "You seemed to avoid facial expressions.", Type: 1, IsPositive: 0},
	{ID: 45, Text: "Your sitting posture conveyed confidence.", Type: 1, IsPositive: 1},
	{ID: 46, Text: "Your posture suggested discomfort.", Type: 1, IsPositive: 0},
	{ID: 47, Text: "You used open hand gestures effectively.", Type: 1, IsPositive: 1},
	{ID: 48, Text: "You kept your arms tightly crossed frequently.", Type: 1, IsPositive: 0},
	{ID: 49, Text: "Your eye contact was balanced and natural.", Type: 1, IsPositive: 1},
	{ID: 50, Text: "You avoided eye contact when answering difficult questions.", Type: 1, IsPositive: 0},
	{ID: 51, Text: "You maintained a relaxed but professional posture.", Type: 1, IsPositive: 1},
	{ID: 52, Text: "You appeared stiff and rigid in your seating posture.", Type: 1, IsPositive: 0},
	{ID: 53, Text: "Your smile helped create a friendly atmosphere.", Type: 1, IsPositive: 1},
	{ID: 54, Text: "Your lack of facial expression made you seem disengaged.", Type: 1, IsPositive: 0},
	{ID: 55, Text: "You had good control over nervous habits.", Type: 1, IsPositive: 1},
	{ID: 56, Text: "You tapped your feet frequently, which was distracting.", Type: 1, IsPositive: 0},
	{ID: 57, Text: "Your hand movements felt natural and expressive.", Type: 1, IsPositive: 1},
	{ID: 58, Text: "Your hands remained in your lap for most of the interview.", Type: 1, IsPositive: 0},
	{ID: 59, Text: "Your head nodding showed engagement and understanding.", Type: 1, IsPositive: 1},
	{ID: 60, Text: "You tilted your head thoughtfully during key moments.", Type: 1, IsPositive: 1},
	{ID: 61, Text: "You maintained a neutral but attentive facial expression.", Type: 1, IsPositive: 1},
	{ID: 62, Text: "You avoided physical barriers, like crossing arms tightly.", Type: 1, IsPositive: 1},
	{ID: 63, Text: "Your feet were firmly planted, showing confidence.", Type: 1, IsPositive: 1},
	{ID: 64, Text: "You seemed fidgety with your fingers.", Type: 1, IsPositive: 0},
	{ID: 65, Text: "Your gestures were confident and purposeful.", Type: 1, IsPositive: 1},
	{ID: 66, Text: "You avoided leaning too far into the interviewer's space.", Type: 1, IsPositive: 1},
	{ID: 67, Text: "You maintained a calm and steady breathing rhythm.", Type: 1, IsPositive: 1},
	{ID: 68, Text: "You sighed audibly a few times, indicating stress.", Type: 1, IsPositive: 0},
	{ID: 69, Text: "Your sitting posture demonstrated readiness and focus.", Type: 1, IsPositive: 1},
	{ID: 70, Text: "You played with your pen or other items frequently.", Type: 1, IsPositive: 0},
	{ID: 71, Text: "Your open palm gestures added credibility to your points.", Type: 1, IsPositive: 1},
	{ID: 72, Text: "You avoided making large, exaggerated gestures.", Type: 1, IsPositive: 1},
	{ID: 73, Text: "Your shoulders were relaxed and not tense.", Type: 1, IsPositive: 1},
	{ID: 74, Text: "Your shoulders seemed hunched, suggesting low confidence.", Type: 1, IsPositive: 0},
	{ID: 75, Text: "Your facial expressions conveyed active interest.", Type: 1, IsPositive: 1},
	{ID: 76, Text: "You scratched your head or face frequently, which was distracting.", Type: 1, IsPositive: 0},
	{ID: 77, Text: "You maintained consistent physical presence and focus.", Type: 1, IsPositive: 1},
	{ID: 78, Text: "You occasionally seemed distracted by background elements.", Type: 1, IsPositive: 0},
	{ID: 79, Text: "Your neutral expressions during pauses were professional.", Type: 1, IsPositive: 1},
	{ID: 80, Text: "You avoided fidgeting with your chair or desk.", Type: 1, IsPositive: 1},
	{ID: 81, Text: "Your body was aligned and facing the interviewer.", Type: 1, IsPositive: 1},
	{ID: 82, Text: "You turned away slightly at times, reducing engagement.", Type: 1, IsPositive: 0},
	{ID: 83, Text: "Your head was held high, projecting confidence.", Type: 1, IsPositive: 1},
	{ID: 84, Text: "You looked down often, which could suggest nervousness.", Type: 1, IsPositive: 0},
	{ID: 85, Text: "You leaned slightly forward when discussing key topics.", Type: 1, IsPositive: 1},
	{ID: 86, Text: "You folded your arms when facing challenging questions.", Type: 1, IsPositive: 0},
	{ID: 87, Text: "You showed engagement through subtle facial cues.", Type: 1, IsPositive: 1},
	{ID: 88, Text: "You avoided crossing your legs frequently.", Type: 1, IsPositive: 1},
	{ID: 89, Text: "Your physical energy matched your verbal enthusiasm.", Type: 1, IsPositive: 1},
	{ID: 90, Text: "You avoided excessive leaning on the table.", Type: 1, IsPositive: 1},
	{ID: 91, Text: "You maintained stillness without appearing rigid.", Type: 1, IsPositive: 1},
	{ID: 92, Text: "You seemed physically comfortable in the space.", Type: 1, IsPositive: 1},
	{ID: 93, Text: "Your facial expressions adapted well to different questions.", Type: 1, IsPositive: 1},
	{ID: 94, Text: "You frequently adjusted your seating position.", Type: 1, IsPositive: 0},
	{ID: 95, Text: "Your gestures added clarity to your verbal points.", Type: 1, IsPositive: 1},
	{ID: 96, Text: "Your physical cues matched your confidence level.", Type: 1, IsPositive: 1},
	{ID: 97, Text: "You avoided over-expressive hand gestures.", Type: 1, IsPositive: 1},
	{ID: 98, Text: "Your posture remained consistent throughout the interview.", Type: 1, IsPositive: 1},
	{ID: 99, Text: "You made good use of natural pauses and stillness.", Type: 1, IsPositive: 1},
	{ID: 100, Text: "Your physical demeanor supported your overall confidence.", Type: 1, IsPositive: 1},
}

// Fixed lists for the polarity-driven branch of the non-verbal generator.
var nonVerbalPositive = []feedbackapimodels.NonVerbalEntry{
	{ID: 1, Text: "You maintained a calm and composed demeanor, which made you appear confident.", Type: 1, IsPositive: 1},
	{ID: 2, Text: "Your breathing was steady, helping you control nervousness effectively.", Type: 1, IsPositive: 1},
	{ID: 3, Text: "You handled stressful moments well, taking pauses when needed instead of rushing.", Type: 1, IsPositive: 1},
	{ID: 4, Text: "Your facial expressions remained natural and relaxed, conveying confidence.", Type: 1, IsPositive: 1},
	{ID: 5, Text: "You spoke at a steady pace, showing control over your nerves.", Type: 1, IsPositive: 1},
	{ID: 6, Text: "You managed to keep your gestures smooth and natural, avoiding nervous fidgeting.", Type: 1, IsPositive: 1},
	{ID: 7, Text: "Your tone of voice was clear and controlled, reinforcing your confidence.", Type: 1, IsPositive: 1},
	{ID: 8, Text: "You smiled naturally at appropriate moments, making you seem more at ease.", Type: 1, IsPositive: 1},
	{ID: 9, Text: "You maintained consistent eye contact, showing engagement without appearing anxious.", Type: 1, IsPositive: 1},
	{ID: 10, Text: "You handled unexpected questions smoothly without showing signs of panic.", Type: 1, IsPositive: 1},
	{ID: 11, Text: "You used controlled hand gestures to emphasize points, which added to your confidence.", Type: 1, IsPositive: 1},
	{ID: 12, Text: "Your posture was upright and relaxed, projecting confidence and professionalism.", Type: 1, IsPositive: 1},
	{ID: 13, Text: "You maintained a steady gaze and smile, creating a positive and engaging presence.", Type: 1, IsPositive: 1},
	{ID: 14, Text: "You used pauses effectively, allowing time for thoughtful responses and avoiding rushed answers.", Type: 1, IsPositive: 1},
	{ID: 15, Text: "Your body language was open and relaxed, reflecting confidence and ease.", Type: 1, IsPositive: 1},
}

var nonVerbalNegative = []feedbackapimodels.NonVerbalEntry{
	{ID: 1, Text: "You appeared nervous, as indicated by your fidgeting and restless movements.", Type: 1, IsPositive: 0},
	{ID: 2, Text: "Your breathing was uneven, which may have affected your ability to stay calm under pressure.", Type: 1, IsPositive: 0},
	{ID: 3, Text: "You seemed stressed during challenging questions, as shown by your tense facial expressions.", Type: 1, IsPositive: 0},
	{ID: 4, Text: "Your speech pace was inconsistent, which may have affected clarity and confidence.", Type: 1, IsPositive: 0},
	{ID: 5, Text: "You fidgeted frequently, indicating nervousness and discomfort.", Type: 1, IsPositive: 0},
	{ID: 6, Text: "Your voice wavered at times, suggesting anxiety or uncertainty.", Type: 1, IsPositive: 0},
	{ID: 7, Text: "You avoided eye contact during challenging questions, which may have conveyed insecurity.", Type: 1, IsPositive: 0},
	{ID: 8, Text: "Your facial expressions appeared strained, indicating discomfort or stress.", Type: 1, IsPositive: 0},
	{ID: 11, Text: "You appeared tense at times - try taking a deep breath before answering to stay relaxed.", Type: 1, IsPositive: 0},
	{ID: 13, Text: "You fidgeted a bit when nervous. Keeping your hands still or using controlled gestures may help.", Type: 1, IsPositive: 0},
	{ID: 14, Text: "Your breathing was uneven during some responses, which may indicate nervousness.", Type: 1, IsPositive: 0},
	{ID: 15, Text: "You avoided eye contact when answering difficult questions. Try to maintain steady engagement.", Type: 1, IsPositive: 0},
	{ID: 16, Text: "Your voice wavered slightly during some answers. Speaking more slowly can help with control.", Type: 1, IsPositive: 0},
	{ID: 18, Text: "You hesitated frequently while speaking. Practicing structured answers can boost your confidence.", Type: 1, IsPositive: 0},
	{ID: 19, Text: "Your facial expressions sometimes showed stress. Relaxing your face can help project confidence.", Type: 1, IsPositive: 0},
}
